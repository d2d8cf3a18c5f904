package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"doc-quiz/internal/cache"
	"doc-quiz/internal/domain"
	"doc-quiz/internal/logger"

	"go.uber.org/zap"
)

// ErrGenerationResultNotFound is returned when no cached result exists for an id.
var ErrGenerationResultNotFound = errors.New("generation result not found in cache")

// GenerationResultCache keeps recent generation results addressable by id.
type GenerationResultCache interface {
	Put(ctx context.Context, generationID string, questions []domain.GeneratedQuestion) error
	Get(ctx context.Context, generationID string) ([]domain.GeneratedQuestion, error)
	Enabled() bool
}

type generationResultCache struct {
	cache domain.Cache
	ttl   time.Duration
}

// NewGenerationResultCache returns a no-op cache when c is nil.
func NewGenerationResultCache(c domain.Cache, ttl time.Duration) GenerationResultCache {
	if c == nil {
		logger.Get().Warn("Generation result cache disabled, no cache backend configured")
		return noopGenerationResultCache{}
	}
	return &generationResultCache{cache: c, ttl: ttl}
}

func generationResultKey(generationID string) string {
	return cache.GenerationResultKey(generationID)
}

func (s *generationResultCache) Enabled() bool { return true }

// Put stores questions under generationID.
func (s *generationResultCache) Put(ctx context.Context, generationID string, questions []domain.GeneratedQuestion) error {
	if generationID == "" {
		return domain.NewInvalidInputError("generation id is required")
	}
	key := generationResultKey(generationID)

	data, err := json.Marshal(questions)
	if err != nil {
		return domain.NewInternalError("failed to marshal generation result", err)
	}
	if err := s.cache.Set(ctx, key, string(data), s.ttl); err != nil {
		logger.Get().Error("Failed to cache generation result", zap.Error(err), zap.String("key", key))
		return domain.NewInternalError(fmt.Sprintf("failed to cache generation result for key %s", key), err)
	}
	logger.Get().Debug("Cached generation result", zap.String("key", key), zap.Duration("ttl", s.ttl))
	return nil
}

// Get returns ErrGenerationResultNotFound on a cache miss.
func (s *generationResultCache) Get(ctx context.Context, generationID string) ([]domain.GeneratedQuestion, error) {
	key := generationResultKey(generationID)

	data, err := s.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return nil, ErrGenerationResultNotFound
		}
		logger.Get().Error("Failed to read generation result", zap.Error(err), zap.String("key", key))
		return nil, domain.NewInternalError(fmt.Sprintf("failed to read generation result for key %s", key), err)
	}
	if data == "" {
		return nil, ErrGenerationResultNotFound
	}

	var questions []domain.GeneratedQuestion
	if err := json.Unmarshal([]byte(data), &questions); err != nil {
		return nil, domain.NewInternalError(fmt.Sprintf("failed to decode generation result for key %s", key), err)
	}
	return questions, nil
}

type noopGenerationResultCache struct{}

func (noopGenerationResultCache) Enabled() bool { return false }

func (noopGenerationResultCache) Put(context.Context, string, []domain.GeneratedQuestion) error {
	return nil
}

func (noopGenerationResultCache) Get(context.Context, string) ([]domain.GeneratedQuestion, error) {
	return nil, ErrGenerationResultNotFound
}

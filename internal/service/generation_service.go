package service

import (
	"context"
	"errors"
	"time"

	"doc-quiz/internal/domain"
	"doc-quiz/internal/dto"
	"doc-quiz/internal/logger"
	"doc-quiz/internal/prompt"
	"doc-quiz/internal/util"
	"doc-quiz/internal/validation"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GenerationResult is the enriched output of one pipeline run.
type GenerationResult struct {
	ID        string
	Questions []domain.GeneratedQuestion
	// CollectionID is set when the questions were saved as a collection.
	CollectionID string
	// Cached reports whether the result can be fetched again by ID.
	Cached bool
}

// GenerationService runs the resolve, prompt, generate and enrich pipeline.
type GenerationService interface {
	Catalog(ctx context.Context) ([]domain.CatalogEntry, error)
	// Generate accepts a nil user; questions are then never persisted.
	Generate(ctx context.Context, user *domain.User, req *dto.GenerateRequest) (*GenerationResult, error)
	GetResult(ctx context.Context, generationID string) ([]domain.GeneratedQuestion, error)
}

type generationService struct {
	scanner     CatalogScanner
	resolver    TopicResolver
	generator   domain.QuestionGenerator
	collections domain.CollectionRepository
	results     GenerationResultCache
	validator   *validation.Validator
	now         func() time.Time
}

// NewGenerationService wires the pipeline. collections and results may be nil.
func NewGenerationService(
	scanner CatalogScanner,
	resolver TopicResolver,
	generator domain.QuestionGenerator,
	collections domain.CollectionRepository,
	results GenerationResultCache,
) GenerationService {
	if results == nil {
		results = noopGenerationResultCache{}
	}
	return &generationService{
		scanner:     scanner,
		resolver:    resolver,
		generator:   generator,
		collections: collections,
		results:     results,
		validator:   validation.NewValidator(),
		now:         time.Now,
	}
}

func (s *generationService) Catalog(ctx context.Context) ([]domain.CatalogEntry, error) {
	entries, err := s.scanner.Scan(ctx)
	if err != nil {
		return nil, err
	}
	logger.Get().Debug("Catalog scanned", zap.Int("domains", len(entries)))
	return entries, nil
}

func (s *generationService) Generate(ctx context.Context, user *domain.User, req *dto.GenerateRequest) (*GenerationResult, error) {
	l := logger.Get()

	req.ApplyDefaults()
	if errs := s.validator.ValidateGenerateRequest(req); len(errs) > 0 {
		return nil, errs
	}
	difficulty := domain.Difficulty(req.Difficulty)

	record, err := s.resolver.Resolve(ctx, req.DomainID, req.TopicID)
	if err != nil {
		return nil, asDomainError(err, "failed to load documentation")
	}

	p, err := prompt.Build(record, difficulty, req.Count)
	if err != nil {
		return nil, domain.NewInternalError("failed to build prompt", err)
	}

	l.Info("Generating questions",
		zap.String("domain_id", record.DomainID),
		zap.String("topic_id", record.TopicID),
		zap.String("difficulty", req.Difficulty),
		zap.Int("count", req.Count))

	questions, err := s.generator.Generate(ctx, p, record, difficulty, req.Count)
	if err != nil {
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			return nil, err
		}
		return nil, domain.NewGenerationError("failed to generate questions", err)
	}

	result := &GenerationResult{
		ID:        util.NewULID(),
		Questions: EnrichQuestions(questions, record.DomainID, record.TopicID, req.CollectionName),
	}

	if req.CollectionName != "" && user != nil && s.collections != nil {
		collection := &domain.Collection{
			ID:        uuid.NewString(),
			Name:      req.CollectionName,
			UserID:    user.ID,
			Questions: result.Questions,
			CreatedAt: s.now().UTC(),
			Tags:      BuildTags(record.DomainID, record.TopicID),
		}
		if err := s.collections.Save(ctx, collection); err != nil {
			l.Error("Failed to save generated collection",
				zap.Error(err),
				zap.String("collection_name", req.CollectionName),
				zap.String("user_id", user.ID))
		} else {
			result.CollectionID = collection.ID
			l.Info("Saved generated collection",
				zap.String("collection_id", collection.ID),
				zap.String("user_id", user.ID))
		}
	}

	if s.results.Enabled() {
		if err := s.results.Put(ctx, result.ID, result.Questions); err != nil {
			l.Warn("Failed to cache generation result", zap.Error(err), zap.String("generation_id", result.ID))
		} else {
			result.Cached = true
		}
	}

	return result, nil
}

func (s *generationService) GetResult(ctx context.Context, generationID string) ([]domain.GeneratedQuestion, error) {
	questions, err := s.results.Get(ctx, generationID)
	if err != nil {
		if errors.Is(err, ErrGenerationResultNotFound) {
			return nil, domain.NewNotFoundError("generation result not found or expired").
				WithContext("generationId", generationID)
		}
		return nil, err
	}
	return questions, nil
}

// asDomainError passes domain errors through and wraps anything else as internal.
func asDomainError(err error, message string) error {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return err
	}
	return domain.NewInternalError(message, err)
}

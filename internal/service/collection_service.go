package service

import (
	"context"
	"slices"
	"time"

	"doc-quiz/internal/domain"
	"doc-quiz/internal/dto"
	"doc-quiz/internal/logger"
	"doc-quiz/internal/util"
	"doc-quiz/internal/validation"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CollectionService manages saved question collections.
type CollectionService interface {
	// List returns the caller's collections followed by the shared demo collections.
	List(ctx context.Context, user *domain.User) ([]dto.CollectionSummary, error)
	Create(ctx context.Context, user *domain.User, req *dto.CreateCollectionRequest) (*domain.Collection, error)
	Get(ctx context.Context, user *domain.User, id string) (*domain.Collection, error)
}

type collectionService struct {
	collections domain.CollectionRepository
	validator   *validation.Validator
	now         func() time.Time
}

func NewCollectionService(collections domain.CollectionRepository) CollectionService {
	return &collectionService{
		collections: collections,
		validator:   validation.NewValidator(),
		now:         time.Now,
	}
}

// visibleTo reports whether user may read c.
func visibleTo(c *domain.Collection, user *domain.User) bool {
	return c.UserID == domain.DemoUserID || (user != nil && c.UserID == user.ID)
}

func (s *collectionService) List(ctx context.Context, user *domain.User) ([]dto.CollectionSummary, error) {
	all, err := s.collections.GetAll(ctx)
	if err != nil {
		return nil, domain.NewPersistenceError("failed to list collections", err)
	}

	var own, shared []dto.CollectionSummary
	for _, c := range all {
		switch {
		case user != nil && c.UserID == user.ID:
			own = append(own, dto.NewCollectionSummary(c))
		case c.UserID == domain.DemoUserID:
			shared = append(shared, dto.NewCollectionSummary(c))
		}
	}
	return append(append(make([]dto.CollectionSummary, 0, len(own)+len(shared)), own...), shared...), nil
}

func (s *collectionService) Create(ctx context.Context, user *domain.User, req *dto.CreateCollectionRequest) (*domain.Collection, error) {
	if user == nil {
		return nil, domain.NewUnauthorizedError("authentication required")
	}
	if errs := s.validator.ValidateCreateCollectionRequest(req); len(errs) > 0 {
		return nil, errs
	}

	questions := slices.Clone(req.Questions)
	for i := range questions {
		if questions[i].ID == "" {
			questions[i].ID = util.NewULID()
		}
		if questions[i].Type == "" {
			questions[i].Type = domain.QuestionTypeMultipleChoice
		}
	}

	collection := &domain.Collection{
		ID:        uuid.NewString(),
		Name:      req.Name,
		UserID:    user.ID,
		Questions: questions,
		CreatedAt: s.now().UTC(),
		Tags:      req.Tags,
	}
	if err := s.collections.Save(ctx, collection); err != nil {
		return nil, domain.NewPersistenceError("failed to save collection", err)
	}
	logger.Get().Info("Collection created",
		zap.String("collection_id", collection.ID),
		zap.String("user_id", user.ID),
		zap.Int("questions", len(questions)))
	return collection, nil
}

func (s *collectionService) Get(ctx context.Context, user *domain.User, id string) (*domain.Collection, error) {
	collection, err := s.collections.GetByID(ctx, id)
	if err != nil {
		return nil, domain.NewPersistenceError("failed to load collection", err)
	}
	if collection == nil {
		return nil, domain.NewNotFoundError("collection not found").WithContext("collectionId", id)
	}
	if !visibleTo(collection, user) {
		return nil, domain.NewForbiddenError("collection belongs to another user")
	}
	return collection, nil
}

package service

import (
	"context"
	"fmt"
	"time"

	"doc-quiz/internal/domain"
	"doc-quiz/internal/dto"
	"doc-quiz/internal/logger"
	"doc-quiz/internal/validation"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PerformanceService scores quiz attempts and lists a user's history.
type PerformanceService interface {
	Submit(ctx context.Context, user *domain.User, req *dto.SubmitPerformanceRequest) (*domain.Performance, error)
	History(ctx context.Context, user *domain.User) ([]dto.PerformanceResponse, error)
}

type performanceService struct {
	performances domain.PerformanceRepository
	collections  domain.CollectionRepository
	validator    *validation.Validator
	now          func() time.Time
}

func NewPerformanceService(performances domain.PerformanceRepository, collections domain.CollectionRepository) PerformanceService {
	return &performanceService{
		performances: performances,
		collections:  collections,
		validator:    validation.NewValidator(),
		now:          time.Now,
	}
}

// Submit scores the answers against the stored collection. Questions left
// unanswered count as wrong.
func (s *performanceService) Submit(ctx context.Context, user *domain.User, req *dto.SubmitPerformanceRequest) (*domain.Performance, error) {
	if user == nil {
		return nil, domain.NewUnauthorizedError("authentication required")
	}
	if errs := s.validator.ValidateSubmitPerformanceRequest(req); len(errs) > 0 {
		return nil, errs
	}

	collection, err := s.collections.GetByID(ctx, req.CollectionID)
	if err != nil {
		return nil, domain.NewPersistenceError("failed to load collection", err)
	}
	if collection == nil {
		return nil, domain.NewNotFoundError("collection not found").WithContext("collectionId", req.CollectionID)
	}
	if !visibleTo(collection, user) {
		return nil, domain.NewForbiddenError("collection belongs to another user")
	}

	answers := make([]domain.PerformanceAnswer, 0, len(req.Answers))
	score := 0
	for _, a := range req.Answers {
		q, ok := collection.QuestionByID(a.QuestionID)
		if !ok {
			return nil, domain.NewInvalidInputError(fmt.Sprintf("question %s is not part of collection %s", a.QuestionID, collection.ID)).
				WithContext("questionId", a.QuestionID)
		}
		if a.SelectedIndex >= len(q.Content.Options) {
			return nil, domain.NewInvalidInputError(fmt.Sprintf("selected index %d out of range for question %s", a.SelectedIndex, q.ID)).
				WithContext("questionId", a.QuestionID)
		}
		correct := a.SelectedIndex == q.Content.CorrectAnswerIndex
		if correct {
			score++
		}
		answers = append(answers, domain.PerformanceAnswer{
			QuestionID:    a.QuestionID,
			SelectedIndex: a.SelectedIndex,
			Correct:       correct,
		})
	}

	performance := &domain.Performance{
		ID:             uuid.NewString(),
		UserID:         user.ID,
		CollectionID:   collection.ID,
		Score:          score,
		TotalQuestions: len(collection.Questions),
		Answers:        answers,
		Date:           s.now().UTC(),
	}
	if err := s.performances.Save(ctx, performance); err != nil {
		return nil, domain.NewPersistenceError("failed to save performance", err)
	}

	logger.Get().Info("Performance recorded",
		zap.String("user_id", user.ID),
		zap.String("collection_id", collection.ID),
		zap.Int("score", score),
		zap.Int("total", performance.TotalQuestions))
	return performance, nil
}

func (s *performanceService) History(ctx context.Context, user *domain.User) ([]dto.PerformanceResponse, error) {
	if user == nil {
		return nil, domain.NewUnauthorizedError("authentication required")
	}
	performances, err := s.performances.GetByUserID(ctx, user.ID)
	if err != nil {
		return nil, domain.NewPersistenceError("failed to load performance history", err)
	}
	collections, err := s.collections.GetAll(ctx)
	if err != nil {
		return nil, domain.NewPersistenceError("failed to load collections", err)
	}
	names := make(map[string]string, len(collections))
	for _, c := range collections {
		names[c.ID] = c.Name
	}

	history := make([]dto.PerformanceResponse, 0, len(performances))
	for _, p := range performances {
		name, ok := names[p.CollectionID]
		if !ok {
			name = dto.UnknownCollectionName
		}
		history = append(history, dto.PerformanceResponse{Performance: *p, CollectionName: name})
	}
	return history, nil
}

package dto

import (
	"time"

	"doc-quiz/internal/domain"
)

// CreateCollectionRequest is the body of POST /api/collections.
// @Description Request body for saving a collection of questions
type CreateCollectionRequest struct {
	Name      string                     `json:"name" example:"React Hooks"`
	Questions []domain.GeneratedQuestion `json:"questions"`
	Tags      []string                   `json:"tags,omitempty"`
}

// CollectionSummary is one entry of GET /api/collections.
type CollectionSummary struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	QuestionsCount int       `json:"questionsCount"`
	CreatedAt      time.Time `json:"createdAt"`
	Tags           []string  `json:"tags,omitempty"`
}

// NewCollectionSummary summarizes c without its questions.
func NewCollectionSummary(c *domain.Collection) CollectionSummary {
	return CollectionSummary{
		ID:             c.ID,
		Name:           c.Name,
		QuestionsCount: len(c.Questions),
		CreatedAt:      c.CreatedAt,
		Tags:           c.Tags,
	}
}

package domain

import (
	"context"
	"time"
)

// Collection is a saved, named set of generated questions owned by a user.
// Collections are append-only: they are created once and never mutated.
type Collection struct {
	ID        string              `json:"id"`
	Name      string              `json:"name"`
	UserID    string              `json:"userId"`
	Questions []GeneratedQuestion `json:"questions"`
	CreatedAt time.Time           `json:"createdAt"`
	Tags      []string            `json:"tags,omitempty"`
}

// QuestionByID returns the question with the given id, if present.
func (c *Collection) QuestionByID(id string) (*GeneratedQuestion, bool) {
	for i := range c.Questions {
		if c.Questions[i].ID == id {
			return &c.Questions[i], true
		}
	}
	return nil, false
}

// PerformanceAnswer is one answered question within a quiz attempt.
type PerformanceAnswer struct {
	QuestionID    string `json:"questionId"`
	SelectedIndex int    `json:"selectedIndex"`
	Correct       bool   `json:"correct"`
}

// Performance records a user's scored attempt at a collection.
type Performance struct {
	ID             string              `json:"id"`
	UserID         string              `json:"userId"`
	CollectionID   string              `json:"collectionId"`
	Score          int                 `json:"score"`
	TotalQuestions int                 `json:"totalQuestions"`
	Answers        []PerformanceAnswer `json:"answers"`
	Date           time.Time           `json:"date"`
}

// CollectionRepository is the append-only collection store.
// GetByID returns (nil, nil) when no collection matches.
type CollectionRepository interface {
	Save(ctx context.Context, collection *Collection) error
	GetAll(ctx context.Context) ([]*Collection, error)
	GetByID(ctx context.Context, id string) (*Collection, error)
}

// PerformanceRepository is the append-only quiz attempt store.
type PerformanceRepository interface {
	Save(ctx context.Context, performance *Performance) error
	GetByUserID(ctx context.Context, userID string) ([]*Performance, error)
}

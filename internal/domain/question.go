package domain

import (
	"context"
	"fmt"
)

// QuestionTypeMultipleChoice is the only question type produced by the generators.
const QuestionTypeMultipleChoice = "multiple_choice"

// DefaultCollectionName labels questions generated without an explicit collection.
const DefaultCollectionName = "Auto Generated"

// QuestionContent is the body of a multiple-choice question.
type QuestionContent struct {
	QuestionText       string   `json:"question_text"`
	Options            []string `json:"options"`
	CorrectAnswerIndex int      `json:"correct_answer_index"`
	CodeSnippet        string   `json:"code_snippet,omitempty"`
}

// GeneratedQuestion is a question produced by a QuestionGenerator.
// Tags and CollectionName are only set after enrichment.
type GeneratedQuestion struct {
	ID             string          `json:"id"`
	Type           string          `json:"type"`
	Content        QuestionContent `json:"content"`
	Explanation    string          `json:"explanation"`
	Tags           []string        `json:"tags,omitempty"`
	CollectionName string          `json:"collectionName,omitempty"`
}

// Validate checks that the question has at least two options and an in-range answer index.
func (q *GeneratedQuestion) Validate() error {
	n := len(q.Content.Options)
	if n < 2 {
		return fmt.Errorf("question %q has %d options, need at least 2", q.ID, n)
	}
	if q.Content.CorrectAnswerIndex < 0 || q.Content.CorrectAnswerIndex >= n {
		return fmt.Errorf("question %q correct_answer_index %d out of range [0,%d)", q.ID, q.Content.CorrectAnswerIndex, n)
	}
	return nil
}

// Prompt is the system/user message pair sent to the model.
type Prompt struct {
	System string
	User   string
}

// QuestionGenerator turns a prompt and its source record into raw (un-enriched) questions.
type QuestionGenerator interface {
	Generate(ctx context.Context, prompt Prompt, record *DocumentationRecord, difficulty Difficulty, count int) ([]GeneratedQuestion, error)
}

package models

import (
	"database/sql"
	"time"
)

// User is a row of the users table.
type User struct {
	ID        string         `db:"id"`
	GoogleID  string         `db:"google_id"`
	Email     string         `db:"email"`
	Name      string         `db:"name"`
	Picture   sql.NullString `db:"picture"`
	CreatedAt time.Time      `db:"created_at"`
}

// Collection is a row of the collections table. Questions and tags are JSON text.
type Collection struct {
	ID        string                         `db:"id"`
	Name      string                         `db:"name"`
	UserID    string                         `db:"user_id"`
	Questions JSONColumn[[]QuestionDocument] `db:"questions"`
	Tags      JSONColumn[[]string]           `db:"tags"`
	CreatedAt time.Time                      `db:"created_at"`
}

// QuestionDocument is the stored form of a generated question.
type QuestionDocument struct {
	ID             string          `json:"id"`
	Type           string          `json:"type"`
	Content        ContentDocument `json:"content"`
	Explanation    string          `json:"explanation"`
	Tags           []string        `json:"tags,omitempty"`
	CollectionName string          `json:"collectionName,omitempty"`
}

type ContentDocument struct {
	QuestionText       string   `json:"question_text"`
	Options            []string `json:"options"`
	CorrectAnswerIndex int      `json:"correct_answer_index"`
	CodeSnippet        string   `json:"code_snippet,omitempty"`
}

// Performance is a row of the performances table.
type Performance struct {
	ID             string                       `db:"id"`
	UserID         string                       `db:"user_id"`
	CollectionID   string                       `db:"collection_id"`
	Score          int                          `db:"score"`
	TotalQuestions int                          `db:"total_questions"`
	Answers        JSONColumn[[]AnswerDocument] `db:"answers"`
	Date           time.Time                    `db:"date"`
}

type AnswerDocument struct {
	QuestionID    string `json:"questionId"`
	SelectedIndex int    `json:"selectedIndex"`
	Correct       bool   `json:"correct"`
}

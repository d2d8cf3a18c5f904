package dto

import (
	"encoding/json"

	"doc-quiz/internal/domain"
)

const (
	DefaultQuestionCount = 5
	MinQuestionCount     = 1
	MaxQuestionCount     = 10
)

// GenerateRequest is the body of POST /api/generate.
// @Description Request body for generating questions from a documentation topic
type GenerateRequest struct {
	DomainID       string `json:"domainId" example:"react19"`
	TopicID        string `json:"topicId,omitempty" example:"hooks/useState"`
	Difficulty     string `json:"difficulty,omitempty" example:"beginner"`
	Count          int    `json:"count,omitempty" example:"5"`
	CollectionName string `json:"collectionName,omitempty" example:"React Hooks"`

	// countSet records that the decoded body carried a count, even zero.
	countSet bool
}

// UnmarshalJSON tells an explicit "count": 0 apart from an omitted count.
func (r *GenerateRequest) UnmarshalJSON(data []byte) error {
	type plain GenerateRequest
	aux := struct {
		*plain
		Count *int `json:"count"`
	}{plain: (*plain)(r)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	r.countSet = aux.Count != nil
	if aux.Count != nil {
		r.Count = *aux.Count
	}
	return nil
}

// ApplyDefaults fills an omitted difficulty and count. A count decoded from
// JSON is kept as sent so validation can reject zero.
func (r *GenerateRequest) ApplyDefaults() {
	if r.Difficulty == "" {
		r.Difficulty = string(domain.DifficultyBeginner)
	}
	if r.Count == 0 && !r.countSet {
		r.Count = DefaultQuestionCount
	}
}

// ErrorResponse is the body of every non-2xx response.
// @Description Error response
type ErrorResponse struct {
	Code    string                 `json:"code" example:"NOT_FOUND"`
	Message string                 `json:"message" example:"documentation file not found"`
	Status  int                    `json:"status" example:"404"`
	Details map[string]interface{} `json:"details,omitempty"`
}

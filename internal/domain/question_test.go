package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeneratedQuestion_Validate(t *testing.T) {
	tests := []struct {
		name    string
		content QuestionContent
		wantErr bool
	}{
		{"valid first", QuestionContent{Options: []string{"a", "b"}, CorrectAnswerIndex: 0}, false},
		{"valid last", QuestionContent{Options: []string{"a", "b", "c", "d"}, CorrectAnswerIndex: 3}, false},
		{"index too large", QuestionContent{Options: []string{"a", "b"}, CorrectAnswerIndex: 2}, true},
		{"negative index", QuestionContent{Options: []string{"a", "b"}, CorrectAnswerIndex: -1}, true},
		{"single option", QuestionContent{Options: []string{"a"}, CorrectAnswerIndex: 0}, true},
		{"no options", QuestionContent{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := GeneratedQuestion{ID: "q1", Content: tt.content}
			err := q.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDocumentationRecord_MentalModelSummary(t *testing.T) {
	r := &DocumentationRecord{MentalModel: json.RawMessage(`{"summary":"state lives outside render"}`)}
	assert.Equal(t, "state lives outside render", r.MentalModelSummary())

	r = &DocumentationRecord{MentalModel: json.RawMessage(`"plain summary"`)}
	assert.Equal(t, "plain summary", r.MentalModelSummary())

	r = &DocumentationRecord{}
	assert.Empty(t, r.MentalModelSummary())
}

func TestTopicSegments(t *testing.T) {
	assert.Equal(t, []string{"hooks", "useState"}, TopicSegments("hooks/useState"))
	assert.Equal(t, []string{"Indexing"}, TopicSegments("Indexing"))
	assert.Equal(t, []string{"a", "b"}, TopicSegments("/a//b/"))
	assert.Empty(t, TopicSegments(""))
}

func TestDomainError_UnwrapAndContext(t *testing.T) {
	cause := errors.New("boom")
	err := NewGenerationError("model call failed", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, CodeGeneration, err.Code)
	assert.Equal(t, "boom", err.Context["error"])
	assert.Contains(t, err.Error(), "model call failed: boom")

	nf := NewPathNotFoundError("documentation topic not found", "/docs/react19/x.json")
	assert.Equal(t, "/docs/react19/x.json", nf.Context["path"])
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{NewMissingFieldError("domainId"), NewOutOfRangeError("count", 11, 1, 10)}
	assert.Contains(t, errs.Error(), "domainId: domainId is required")
	assert.Contains(t, errs.Error(), "count: must be between 1 and 10")
}

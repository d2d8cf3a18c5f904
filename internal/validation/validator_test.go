package validation

import (
	"encoding/json"
	"strings"
	"testing"

	"doc-quiz/internal/domain"
	"doc-quiz/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fields(errs domain.ValidationErrors) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Field)
	}
	return out
}

func TestValidateGenerateRequest(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name   string
		req    dto.GenerateRequest
		fields []string
	}{
		{"defaults are valid", dto.GenerateRequest{DomainID: "react19"}, nil},
		{"explicit values", dto.GenerateRequest{DomainID: "react19", TopicID: "hooks/useState", Difficulty: "advanced", Count: 10}, nil},
		{"missing domain", dto.GenerateRequest{}, []string{"domainId"}},
		{"blank domain", dto.GenerateRequest{DomainID: "   "}, []string{"domainId"}},
		{"bad difficulty", dto.GenerateRequest{DomainID: "react19", Difficulty: "expert"}, []string{"difficulty"}},
		{"count too high", dto.GenerateRequest{DomainID: "react19", Count: 11}, []string{"count"}},
		{"negative count", dto.GenerateRequest{DomainID: "react19", Count: -1}, []string{"count"}},
		{"long collection name", dto.GenerateRequest{DomainID: "react19", CollectionName: strings.Repeat("x", 101)}, []string{"collectionName"}},
		{"several problems", dto.GenerateRequest{Difficulty: "hard", Count: 50}, []string{"domainId", "difficulty", "count"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			req.ApplyDefaults()
			errs := v.ValidateGenerateRequest(&req)
			if tt.fields == nil {
				assert.Empty(t, errs)
				return
			}
			assert.Equal(t, tt.fields, fields(errs))
		})
	}
}

func TestGenerateRequest_ApplyDefaults(t *testing.T) {
	req := dto.GenerateRequest{DomainID: "postgres"}
	req.ApplyDefaults()
	assert.Equal(t, "beginner", req.Difficulty)
	assert.Equal(t, dto.DefaultQuestionCount, req.Count)
}

func TestGenerateRequest_ExplicitZeroCountIsRejected(t *testing.T) {
	v := NewValidator()

	var explicit dto.GenerateRequest
	require.NoError(t, json.Unmarshal([]byte(`{"domainId":"react19","count":0}`), &explicit))
	explicit.ApplyDefaults()
	assert.Equal(t, 0, explicit.Count)
	assert.Equal(t, []string{"count"}, fields(v.ValidateGenerateRequest(&explicit)))

	var omitted dto.GenerateRequest
	require.NoError(t, json.Unmarshal([]byte(`{"domainId":"react19","topicId":"hooks/useState","collectionName":"Hooks"}`), &omitted))
	omitted.ApplyDefaults()
	assert.Equal(t, dto.DefaultQuestionCount, omitted.Count)
	assert.Equal(t, "hooks/useState", omitted.TopicID)
	assert.Equal(t, "Hooks", omitted.CollectionName)
	assert.Empty(t, v.ValidateGenerateRequest(&omitted))

	var explicitSeven dto.GenerateRequest
	require.NoError(t, json.Unmarshal([]byte(`{"domainId":"react19","count":7}`), &explicitSeven))
	assert.Equal(t, 7, explicitSeven.Count)
}

func TestValidateCreateCollectionRequest(t *testing.T) {
	v := NewValidator()
	good := domain.GeneratedQuestion{ID: "q1", Content: domain.QuestionContent{Options: []string{"a", "b"}}}
	bad := domain.GeneratedQuestion{ID: "q2", Content: domain.QuestionContent{Options: []string{"a", "b"}, CorrectAnswerIndex: 3}}

	assert.Empty(t, v.ValidateCreateCollectionRequest(&dto.CreateCollectionRequest{Name: "Set", Questions: []domain.GeneratedQuestion{good}}))
	assert.Equal(t, []string{"name", "questions"}, fields(v.ValidateCreateCollectionRequest(&dto.CreateCollectionRequest{})))

	errs := v.ValidateCreateCollectionRequest(&dto.CreateCollectionRequest{Name: "Set", Questions: []domain.GeneratedQuestion{good, bad}})
	assert.Len(t, errs, 1)
	assert.Equal(t, 1, errs[0].Value)
}

func TestValidateSubmitPerformanceRequest(t *testing.T) {
	v := NewValidator()

	assert.Empty(t, v.ValidateSubmitPerformanceRequest(&dto.SubmitPerformanceRequest{
		CollectionID: "c1",
		Answers:      []dto.AnswerSubmission{{QuestionID: "q1", SelectedIndex: 0}},
	}))

	assert.Equal(t, []string{"collectionId", "answers"}, fields(v.ValidateSubmitPerformanceRequest(&dto.SubmitPerformanceRequest{})))

	errs := v.ValidateSubmitPerformanceRequest(&dto.SubmitPerformanceRequest{
		CollectionID: "c1",
		Answers: []dto.AnswerSubmission{
			{QuestionID: "q1", SelectedIndex: 0},
			{QuestionID: "q1", SelectedIndex: 1},
			{QuestionID: "", SelectedIndex: 0},
			{QuestionID: "q2", SelectedIndex: -1},
		},
	})
	assert.Equal(t, []string{"answers.questionId", "answers.questionId", "answers.selectedIndex"}, fields(errs))
}

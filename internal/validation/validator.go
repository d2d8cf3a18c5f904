package validation

import (
	"strings"

	"doc-quiz/internal/domain"
	"doc-quiz/internal/dto"
)

const maxCollectionNameLength = 100

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateGenerateRequest checks a request after dto.GenerateRequest.ApplyDefaults.
func (v *Validator) ValidateGenerateRequest(req *dto.GenerateRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.DomainID) == "" {
		errors = append(errors, domain.NewMissingFieldError("domainId"))
	}

	if !domain.Difficulty(req.Difficulty).IsValid() {
		errors = append(errors, domain.NewInvalidFormatError("difficulty", req.Difficulty))
	}

	if req.Count < dto.MinQuestionCount || req.Count > dto.MaxQuestionCount {
		errors = append(errors, domain.NewOutOfRangeError("count", req.Count, dto.MinQuestionCount, dto.MaxQuestionCount))
	}

	if len(req.CollectionName) > maxCollectionNameLength {
		errors = append(errors, domain.NewOutOfRangeError("collectionName", len(req.CollectionName), 0, maxCollectionNameLength))
	}

	return errors
}

// ValidateCreateCollectionRequest requires a name and at least one well-formed question.
func (v *Validator) ValidateCreateCollectionRequest(req *dto.CreateCollectionRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.Name) == "" {
		errors = append(errors, domain.NewMissingFieldError("name"))
	} else if len(req.Name) > maxCollectionNameLength {
		errors = append(errors, domain.NewOutOfRangeError("name", len(req.Name), 1, maxCollectionNameLength))
	}

	if len(req.Questions) == 0 {
		errors = append(errors, domain.NewMissingFieldError("questions"))
	}
	for i := range req.Questions {
		if err := req.Questions[i].Validate(); err != nil {
			errors = append(errors, domain.ValidationError{
				Code:    domain.CodeInvalidFormat,
				Field:   "questions",
				Message: err.Error(),
				Value:   i,
			})
		}
	}

	return errors
}

// ValidateSubmitPerformanceRequest checks the shape of a quiz attempt.
func (v *Validator) ValidateSubmitPerformanceRequest(req *dto.SubmitPerformanceRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.CollectionID) == "" {
		errors = append(errors, domain.NewMissingFieldError("collectionId"))
	}
	if len(req.Answers) == 0 {
		errors = append(errors, domain.NewMissingFieldError("answers"))
	}

	seen := make(map[string]bool, len(req.Answers))
	for _, a := range req.Answers {
		if strings.TrimSpace(a.QuestionID) == "" {
			errors = append(errors, domain.NewMissingFieldError("answers.questionId"))
			continue
		}
		if seen[a.QuestionID] {
			errors = append(errors, domain.ValidationError{
				Code:    domain.CodeInvalidFormat,
				Field:   "answers.questionId",
				Message: "question answered more than once",
				Value:   a.QuestionID,
			})
		}
		seen[a.QuestionID] = true
		if a.SelectedIndex < 0 {
			errors = append(errors, domain.NewInvalidFormatError("answers.selectedIndex", a.SelectedIndex))
		}
	}

	return errors
}

package quizgen

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode"

	"doc-quiz/internal/domain"
	"doc-quiz/internal/util"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const questionsSchemaURL = "https://doc-quiz.local/schema/questions.json"

//go:embed schema/questions.json
var questionsSchemaJSON []byte

var questionsSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(questionsSchemaJSON))
	if err != nil {
		return nil, fmt.Errorf("decode questions schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(questionsSchemaURL, doc); err != nil {
		return nil, fmt.Errorf("add questions schema: %w", err)
	}
	return compiler.Compile(questionsSchemaURL)
})

// ErrEmptyResponse is returned when the model reply holds no text.
var ErrEmptyResponse = errors.New("model returned an empty response")

// stripCodeFences removes a leading ``` line (with or without a language tag)
// and a trailing ``` marker. Fences inside the payload are left alone.
func stripCodeFences(text string) string {
	text = strings.TrimSpace(text)
	if rest, ok := strings.CutPrefix(text, "```"); ok {
		if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
			rest = rest[nl+1:]
		} else {
			rest = strings.TrimLeftFunc(rest, unicode.IsLetter)
		}
		text = strings.TrimSpace(rest)
	}
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

// ParseQuestions decodes a model reply into questions. The reply must be a JSON
// array that satisfies the questions schema, and every answer index must point
// at an existing option. Missing ids are filled with ULIDs and missing types
// with multiple_choice.
func ParseQuestions(text string) ([]domain.GeneratedQuestion, error) {
	payload := stripCodeFences(text)
	if payload == "" {
		return nil, ErrEmptyResponse
	}

	instance, err := jsonschema.UnmarshalJSON(strings.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("model response is not valid JSON: %w", err)
	}
	schema, err := questionsSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(instance); err != nil {
		var validationErr *jsonschema.ValidationError
		if errors.As(err, &validationErr) {
			return nil, fmt.Errorf("model response does not match question schema: %s", schemaViolations(validationErr))
		}
		return nil, fmt.Errorf("model response does not match question schema: %w", err)
	}

	var questions []domain.GeneratedQuestion
	if err := json.Unmarshal([]byte(payload), &questions); err != nil {
		return nil, fmt.Errorf("decode questions: %w", err)
	}
	for i := range questions {
		q := &questions[i]
		if q.ID == "" {
			q.ID = util.NewULID()
		}
		if q.Type == "" {
			q.Type = domain.QuestionTypeMultipleChoice
		}
		if err := q.Validate(); err != nil {
			return nil, fmt.Errorf("question %d: %w", i, err)
		}
	}
	return questions, nil
}

// schemaViolations flattens the leaf causes of a validation error into one line.
func schemaViolations(err *jsonschema.ValidationError) string {
	if len(err.Causes) == 0 {
		return fmt.Sprintf("/%s: %s", strings.Join(err.InstanceLocation, "/"), err.Error())
	}
	var parts []string
	for _, cause := range err.Causes {
		parts = append(parts, schemaViolations(cause))
	}
	return strings.Join(parts, "; ")
}

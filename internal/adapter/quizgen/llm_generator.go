package quizgen

import (
	"context"
	"fmt"

	"doc-quiz/internal/domain"
	"doc-quiz/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"
)

// LLMGenerator asks a language model for questions and validates its reply.
// Failures surface as generation errors; there is no fallback to mock output.
type LLMGenerator struct {
	model       llms.Model
	maxTokens   int
	temperature float64
}

// NewLLMGenerator wraps a langchaingo model.
func NewLLMGenerator(model llms.Model, maxTokens int, temperature float64) (*LLMGenerator, error) {
	if model == nil {
		return nil, fmt.Errorf("llm model cannot be nil")
	}
	if maxTokens <= 0 {
		return nil, fmt.Errorf("max tokens must be positive, got %d", maxTokens)
	}
	return &LLMGenerator{model: model, maxTokens: maxTokens, temperature: temperature}, nil
}

// Generate implements domain.QuestionGenerator.
func (g *LLMGenerator) Generate(ctx context.Context, prompt domain.Prompt, record *domain.DocumentationRecord, difficulty domain.Difficulty, count int) ([]domain.GeneratedQuestion, error) {
	l := logger.Get()

	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, prompt.System),
		llms.TextParts(llms.ChatMessageTypeHuman, prompt.User),
	}
	resp, err := g.model.GenerateContent(ctx, messages,
		llms.WithMaxTokens(g.maxTokens),
		llms.WithTemperature(g.temperature),
	)
	if err != nil {
		l.Error("LLM call failed", zap.Error(err))
		return nil, domain.NewGenerationError("failed to generate questions via AI", err)
	}
	if resp == nil || len(resp.Choices) == 0 || resp.Choices[0] == nil {
		return nil, domain.NewGenerationError("failed to generate questions via AI", ErrEmptyResponse)
	}

	text := resp.Choices[0].Content
	l.Debug("Raw LLM response received", zap.String("raw_response", text))

	questions, err := ParseQuestions(text)
	if err != nil {
		l.Error("Failed to parse LLM response", zap.Error(err))
		return nil, domain.NewGenerationError("failed to parse generated questions", err)
	}

	if len(questions) != count {
		name := ""
		if record != nil {
			name = record.Name
		}
		l.Warn("LLM returned a different number of questions than requested",
			zap.String("name", name),
			zap.String("difficulty", string(difficulty)),
			zap.Int("requested", count),
			zap.Int("returned", len(questions)),
		)
	}
	return questions, nil
}

var _ domain.QuestionGenerator = (*LLMGenerator)(nil)

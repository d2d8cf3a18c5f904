package quizgen

import (
	"context"
	"fmt"
	"strings"
	"time"

	"doc-quiz/internal/domain"
	"doc-quiz/internal/logger"

	"go.uber.org/zap"
)

var mockDistractors = []string{
	"To cause side effects in every render",
	"To store global state in a separate process",
	"To fetch data from a SOAP API",
}

// MockGenerator synthesizes questions from the record itself without calling a model.
// The correct answer is always option 0 and restates meta.description.
type MockGenerator struct {
	now func() time.Time
}

// MockOption configures a MockGenerator.
type MockOption func(*MockGenerator)

// WithClock sets the time source used for question ids.
func WithClock(now func() time.Time) MockOption {
	return func(g *MockGenerator) {
		g.now = now
	}
}

// NewMockGenerator creates a MockGenerator.
func NewMockGenerator(opts ...MockOption) *MockGenerator {
	g := &MockGenerator{now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate implements domain.QuestionGenerator. The prompt is ignored.
func (g *MockGenerator) Generate(ctx context.Context, _ domain.Prompt, record *domain.DocumentationRecord, difficulty domain.Difficulty, count int) ([]domain.GeneratedQuestion, error) {
	if record == nil {
		return nil, domain.NewGenerationError("failed to generate mock questions", fmt.Errorf("record is nil"))
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger.Get().Info("Generating mock questions",
		zap.String("name", record.Name),
		zap.String("difficulty", string(difficulty)),
		zap.Int("count", count),
	)

	summary := record.MentalModelSummary()
	if summary == "" {
		summary = "N/A"
	}
	stamp := g.now().UnixNano()

	questions := make([]domain.GeneratedQuestion, 0, count)
	for i := 0; i < count; i++ {
		options := append([]string{record.Meta.Description}, mockDistractors...)
		questions = append(questions, domain.GeneratedQuestion{
			ID:   fmt.Sprintf("mock-%d-%d", stamp, i),
			Type: domain.QuestionTypeMultipleChoice,
			Content: domain.QuestionContent{
				QuestionText: fmt.Sprintf("[MOCK %s] What is the primary purpose of %s? (Derived from %s)",
					strings.ToUpper(string(difficulty)), record.Name, record.Meta.Title),
				Options:            options,
				CorrectAnswerIndex: 0,
			},
			Explanation: fmt.Sprintf(`As stated in the documentation: "%s"`, summary),
		})
	}
	return questions, nil
}

var _ domain.QuestionGenerator = (*MockGenerator)(nil)

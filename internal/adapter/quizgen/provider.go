package quizgen

import (
	"fmt"

	"doc-quiz/internal/config"
	"doc-quiz/internal/domain"
	"doc-quiz/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/anthropic"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"
)

// NewModel creates the langchaingo client for the configured provider.
func NewModel(cfg config.LLMConfig) (llms.Model, error) {
	switch cfg.Provider {
	case config.ProviderAnthropic:
		llm, err := anthropic.New(anthropic.WithToken(cfg.APIKey), anthropic.WithModel(cfg.Model))
		if err != nil {
			return nil, fmt.Errorf("failed to create anthropic client: %w", err)
		}
		return llm, nil
	case config.ProviderOpenAI:
		llm, err := openai.New(openai.WithToken(cfg.APIKey), openai.WithModel(cfg.Model))
		if err != nil {
			return nil, fmt.Errorf("failed to create openai client: %w", err)
		}
		return llm, nil
	case config.ProviderOllama:
		llm, err := ollama.New(ollama.WithServerURL(cfg.ServerURL), ollama.WithModel(cfg.Model))
		if err != nil {
			return nil, fmt.Errorf("failed to create ollama client: %w", err)
		}
		return llm, nil
	default:
		return nil, fmt.Errorf("unsupported llm provider %q", cfg.Provider)
	}
}

// NewGenerator picks the question generator once, at construction. A nil model
// is created from cfg when the model path is selected.
func NewGenerator(cfg config.LLMConfig, model llms.Model) (domain.QuestionGenerator, error) {
	if cfg.Mock() {
		logger.Get().Warn("No LLM credential configured, using mock question generator",
			zap.String("provider", cfg.Provider))
		return NewMockGenerator(), nil
	}
	if model == nil {
		var err error
		if model, err = NewModel(cfg); err != nil {
			return nil, err
		}
	}
	logger.Get().Info("Using LLM question generator",
		zap.String("provider", cfg.Provider),
		zap.String("model", cfg.Model))
	return NewLLMGenerator(model, cfg.MaxTokens, cfg.Temperature)
}

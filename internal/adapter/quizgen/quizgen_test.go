package quizgen

import (
	"context"
	"errors"
	"testing"
	"time"

	"doc-quiz/internal/config"
	"doc-quiz/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

type MockModel struct {
	mock.Mock
}

func (m *MockModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	args := m.Called(ctx, messages)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*llms.ContentResponse), args.Error(1)
}

func (m *MockModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func reply(text string) *llms.ContentResponse {
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: text}}}
}

const twoQuestions = `[
  {
    "content": {
      "question_text": "What does useState return?",
      "options": ["A tuple of value and setter", "A promise", "A ref"],
      "correct_answer_index": 0
    },
    "explanation": "useState returns the current value and a setter."
  },
  {
    "id": "q-2",
    "type": "multiple_choice",
    "content": {
      "question_text": "What is wrong here?",
      "options": ["Nothing", "State is mutated directly"],
      "correct_answer_index": 1,
      "code_snippet": "state.count++"
    },
    "explanation": "Never mutate state."
  }
]`

func useStateRecord() *domain.DocumentationRecord {
	return &domain.DocumentationRecord{
		DomainID:    "react19",
		TopicID:     "hooks/useState",
		Name:        "useState",
		Meta:        domain.DocumentationMeta{Title: "useState Hook", Description: "Adds local state to a function component"},
		MentalModel: []byte(`{"summary":"State is a snapshot per render"}`),
	}
}

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "[1]", "[1]"},
		{"json tag", "```json\n[1]\n```", "[1]"},
		{"no tag", "```\n[1]\n```", "[1]"},
		{"single line", "```json[1]```", "[1]"},
		{"surrounding whitespace", "  \n```json\n[1]\n```  \n", "[1]"},
		{"inner fence kept", "```json\n[\"a ``` b\"]\n```", "[\"a ``` b\"]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripCodeFences(tt.in))
		})
	}
}

func TestParseQuestions(t *testing.T) {
	questions, err := ParseQuestions("```json\n" + twoQuestions + "\n```")
	require.NoError(t, err)
	require.Len(t, questions, 2)

	assert.NotEmpty(t, questions[0].ID)
	assert.Equal(t, domain.QuestionTypeMultipleChoice, questions[0].Type)
	assert.Equal(t, "A tuple of value and setter", questions[0].Content.Options[0])

	assert.Equal(t, "q-2", questions[1].ID)
	assert.Equal(t, 1, questions[1].Content.CorrectAnswerIndex)
	assert.Equal(t, "state.count++", questions[1].Content.CodeSnippet)
}

func TestParseQuestions_Rejects(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", "   "},
		{"prose", "Here are your questions!"},
		{"object not array", `{"content": {}}`},
		{"empty array", "[]"},
		{"fenced empty array", "```json\n[]\n```"},
		{"missing options", `[{"content":{"question_text":"q","correct_answer_index":0},"explanation":"e"}]`},
		{"single option", `[{"content":{"question_text":"q","options":["a"],"correct_answer_index":0},"explanation":"e"}]`},
		{"index out of range", `[{"content":{"question_text":"q","options":["a","b"],"correct_answer_index":2},"explanation":"e"}]`},
		{"negative index", `[{"content":{"question_text":"q","options":["a","b"],"correct_answer_index":-1},"explanation":"e"}]`},
		{"non integer index", `[{"content":{"question_text":"q","options":["a","b"],"correct_answer_index":0.5},"explanation":"e"}]`},
		{"missing explanation", `[{"content":{"question_text":"q","options":["a","b"],"correct_answer_index":0}}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseQuestions(tt.in)
			assert.Error(t, err)
		})
	}
}

func TestMockGenerator(t *testing.T) {
	fixed := time.Unix(1700000000, 0)
	g := NewMockGenerator(WithClock(func() time.Time { return fixed }))

	questions, err := g.Generate(context.Background(), domain.Prompt{}, useStateRecord(), domain.DifficultyBeginner, 2)
	require.NoError(t, err)
	require.Len(t, questions, 2)

	for i, q := range questions {
		assert.Equal(t, domain.QuestionTypeMultipleChoice, q.Type)
		assert.Equal(t, "Adds local state to a function component", q.Content.Options[0])
		assert.Equal(t, 0, q.Content.CorrectAnswerIndex)
		assert.Len(t, q.Content.Options, 4)
		assert.Equal(t, "[MOCK BEGINNER] What is the primary purpose of useState? (Derived from useState Hook)", q.Content.QuestionText)
		assert.Equal(t, `As stated in the documentation: "State is a snapshot per render"`, q.Explanation)
		assert.NoError(t, q.Validate())
		assert.Empty(t, q.Tags)
		assert.Equal(t, []string{"mock-1700000000000000000-0", "mock-1700000000000000000-1"}[i], q.ID)
	}
}

func TestMockGenerator_Deterministic(t *testing.T) {
	fixed := time.Unix(42, 0)
	g := NewMockGenerator(WithClock(func() time.Time { return fixed }))

	first, err := g.Generate(context.Background(), domain.Prompt{}, useStateRecord(), domain.DifficultyAdvanced, 3)
	require.NoError(t, err)
	second, err := g.Generate(context.Background(), domain.Prompt{}, useStateRecord(), domain.DifficultyAdvanced, 3)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestMockGenerator_MissingSummary(t *testing.T) {
	record := useStateRecord()
	record.MentalModel = nil

	questions, err := NewMockGenerator().Generate(context.Background(), domain.Prompt{}, record, domain.DifficultyBeginner, 1)
	require.NoError(t, err)
	assert.Equal(t, `As stated in the documentation: "N/A"`, questions[0].Explanation)
}

func TestLLMGenerator_Success(t *testing.T) {
	model := new(MockModel)
	prompt := domain.Prompt{System: "system", User: "user"}
	model.On("GenerateContent", mock.Anything, mock.MatchedBy(func(msgs []llms.MessageContent) bool {
		return len(msgs) == 2 &&
			msgs[0].Role == llms.ChatMessageTypeSystem &&
			msgs[1].Role == llms.ChatMessageTypeHuman
	})).Return(reply("```json\n"+twoQuestions+"\n```"), nil)

	g, err := NewLLMGenerator(model, 4096, 0.2)
	require.NoError(t, err)

	questions, err := g.Generate(context.Background(), prompt, useStateRecord(), domain.DifficultyBeginner, 2)
	require.NoError(t, err)
	assert.Len(t, questions, 2)
	model.AssertExpectations(t)
}

func TestLLMGenerator_CountMismatchIsNotAnError(t *testing.T) {
	model := new(MockModel)
	model.On("GenerateContent", mock.Anything, mock.Anything).Return(reply(twoQuestions), nil)

	g, err := NewLLMGenerator(model, 4096, 0)
	require.NoError(t, err)

	questions, err := g.Generate(context.Background(), domain.Prompt{}, useStateRecord(), domain.DifficultyBeginner, 5)
	require.NoError(t, err)
	assert.Len(t, questions, 2)
}

func TestLLMGenerator_Failures(t *testing.T) {
	tests := []struct {
		name string
		resp *llms.ContentResponse
		err  error
	}{
		{"call error", nil, errors.New("upstream 529 overloaded")},
		{"no choices", &llms.ContentResponse{}, nil},
		{"malformed json", reply("[{"), nil},
		{"prose", reply("Sure! Here you go."), nil},
		{"empty array", reply("[]"), nil},
		{"bad index", reply(`[{"content":{"question_text":"q","options":["a","b"],"correct_answer_index":7},"explanation":"e"}]`), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := new(MockModel)
			model.On("GenerateContent", mock.Anything, mock.Anything).Return(tt.resp, tt.err)

			g, err := NewLLMGenerator(model, 4096, 0)
			require.NoError(t, err)

			questions, err := g.Generate(context.Background(), domain.Prompt{}, useStateRecord(), domain.DifficultyBeginner, 1)
			assert.Nil(t, questions)

			var domainErr *domain.DomainError
			require.True(t, errors.As(err, &domainErr))
			assert.Equal(t, domain.CodeGeneration, domainErr.Code)
			assert.NotEmpty(t, domainErr.Context["error"])
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
			}
		})
	}
}

func TestNewLLMGenerator_Validation(t *testing.T) {
	_, err := NewLLMGenerator(nil, 10, 0)
	assert.Error(t, err)

	_, err = NewLLMGenerator(new(MockModel), 0, 0)
	assert.Error(t, err)
}

func TestNewGenerator_SelectsModeOnce(t *testing.T) {
	g, err := NewGenerator(config.LLMConfig{Provider: config.ProviderAnthropic}, nil)
	require.NoError(t, err)
	assert.IsType(t, &MockGenerator{}, g)

	g, err = NewGenerator(config.LLMConfig{Provider: config.ProviderAnthropic, APIKey: "key", ForceMock: true}, new(MockModel))
	require.NoError(t, err)
	assert.IsType(t, &MockGenerator{}, g)

	g, err = NewGenerator(config.LLMConfig{Provider: config.ProviderAnthropic, APIKey: "key", MaxTokens: 4096}, new(MockModel))
	require.NoError(t, err)
	assert.IsType(t, &LLMGenerator{}, g)
}

func TestNewModel_UnsupportedProvider(t *testing.T) {
	_, err := NewModel(config.LLMConfig{Provider: "gemini"})
	assert.Error(t, err)
}

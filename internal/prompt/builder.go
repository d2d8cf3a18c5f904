// Package prompt turns a documentation record into the system/user prompt pair
// sent to the question model.
package prompt

import (
	"encoding/json"
	"fmt"

	"doc-quiz/internal/domain"
)

const systemPrompt = `You are a Senior Technical Examiner. Your goal is to generate multiple-choice questions based STRICTLY on the provided documentation.

Difficulty Guidelines:
- Beginner: Focus on 'mental_model' and 'meta.description'. Conceptual understanding.
- Intermediate: Focus on 'usage_patterns' and 'syntax'. Practical implementation.
- Advanced: Focus on 'common_pitfalls' and 'best_practices'. Debugging and optimization.

Output Format:
Return a valid JSON array of objects (AND NOTHING ELSE) with this schema:
[
  {
    "content": {
      "question_text": "...",
      "options": ["A", "B", "C", "D"],
      "correct_answer_index": 0,
      "code_snippet": "Optional code here..."
    },
    "explanation": "..."
  }
]
"correct_answer_index" is the zero-based index of the correct entry in "options".
Do not write any prose before or after the array.`

const userPromptTemplate = `Context:
%s

Task:
Generate %d %s questions about %s/%s.
Ensure the questions are derived ONLY from the provided JSON content.
Return only the JSON array. Do not include markdown formatting like ` + "```json."

// Build creates the prompt pair for count questions of the given difficulty.
// The user prompt embeds the full record as indented JSON.
func Build(record *domain.DocumentationRecord, difficulty domain.Difficulty, count int) (domain.Prompt, error) {
	if record == nil {
		return domain.Prompt{}, fmt.Errorf("build prompt: record is nil")
	}
	if !difficulty.IsValid() {
		return domain.Prompt{}, fmt.Errorf("build prompt: unknown difficulty %q", difficulty)
	}
	if count < 1 {
		return domain.Prompt{}, fmt.Errorf("build prompt: count must be positive, got %d", count)
	}

	var source interface{} = record.Raw
	if record.Raw == nil {
		source = record
	}
	docJSON, err := json.MarshalIndent(source, "", "  ")
	if err != nil {
		return domain.Prompt{}, fmt.Errorf("build prompt: serialize record: %w", err)
	}

	return domain.Prompt{
		System: systemPrompt,
		User:   fmt.Sprintf(userPromptTemplate, docJSON, count, difficulty, record.Category(), record.Name),
	}, nil
}

package tutor

import "github.com/abhisek/doubtbox/internal/llm"

// TurnSchema defines the JSON schema for one classified tutoring turn.
// responseType selects which of the optional fields are meaningful; the
// classifier maps the result into the Envelope sum without repairing tags.
var TurnSchema = &llm.Schema{
	Name:        "tutor-turn",
	Description: "A classified tutoring response: conversation, factual doubt explanation, or perspective explanation",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"response_type": map[string]any{
				"type":        "string",
				"enum":        []any{"conversation", "doubt_explanation", "perspective_explanation"},
				"description": "Which kind of response this is",
			},
			"text": map[string]any{
				"type":        "string",
				"description": "Conversational reply. Only for response_type 'conversation'.",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "Detailed explanation. Only for 'doubt_explanation' or 'perspective_explanation'.",
			},
			"mcqs": map[string]any{
				"type":        "array",
				"description": "Exactly 3 follow-up practice questions, or omitted. Only for 'doubt_explanation'.",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"description": "The question text, in the detected language",
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Exactly 4 candidate options",
						},
						"answer": map[string]any{
							"type":        "string",
							"description": "The correct option, verbatim from options",
						},
					},
					"required":             []any{"question", "options", "answer"},
					"additionalProperties": false,
				},
			},
			"quiz_message": map[string]any{
				"type":        "string",
				"description": "Short encouraging message introducing the quiz, in the detected language. Only when mcqs are present.",
			},
		},
		"required":             []any{"response_type"},
		"additionalProperties": false,
	},
}

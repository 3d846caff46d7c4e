package tutor

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/doubtbox/internal/llm"
)

// Explainer generates per-question answer explanations for the quiz
// results view. It satisfies the quiz engine's Explainer interface.
type Explainer struct {
	provider llm.Provider
	cfg      Config
}

// NewExplainer creates an explainer backed by the given provider.
func NewExplainer(provider llm.Provider, cfg Config) *Explainer {
	return &Explainer{provider: provider, cfg: cfg}
}

// ExplanationSchema defines the JSON schema for one answer explanation.
var ExplanationSchema = &llm.Schema{
	Name:        "mcq-explanation",
	Description: "Explanation of why the correct answer to a multiple-choice question is correct",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"explanation": map[string]any{
				"type":        "string",
				"description": "Clear, concise explanation of why the answer is correct, in the language of the question",
			},
		},
		"required":             []any{"explanation"},
		"additionalProperties": false,
	},
}

// ExplainMCQ issues one model call explaining why answer is correct for
// question, given the options as currently presented.
func (e *Explainer) ExplainMCQ(ctx context.Context, question string, options []string, answer, subject string) (string, error) {
	ctx = llm.WithPurpose(ctx, "mcq-explain")

	req := llm.Request{
		System: explainSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildExplainUserMessage(subject, question, options, answer)},
		},
		Schema:      ExplanationSchema,
		MaxTokens:   e.cfg.ExplainMaxTokens,
		Temperature: e.cfg.Temperature,
	}

	resp, err := e.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("explain mcq: %w", err)
	}

	var out struct {
		Explanation string `json:"explanation"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return "", fmt.Errorf("parse explanation response: %w", err)
	}

	return out.Explanation, nil
}

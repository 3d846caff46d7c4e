package tutor

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/doubtbox/internal/llm"
)

func classify(t *testing.T, payload string) (Envelope, error) {
	t.Helper()
	provider := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(payload)})
	c := NewClassifier(provider, DefaultConfig())
	return c.Classify(context.Background(), Input{Text: "hello", Subject: "General Science"})
}

func TestClassifyRejectsEmptyInput(t *testing.T) {
	c := NewClassifier(llm.NewMockProvider(), DefaultConfig())
	_, err := c.Classify(context.Background(), Input{Subject: "General Science"})
	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
}

func TestClassifyConversation(t *testing.T) {
	env, err := classify(t, `{"response_type":"conversation","text":"Hi! How can I help?"}`)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	conv, ok := env.(Conversation)
	if !ok {
		t.Fatalf("expected Conversation, got %T", env)
	}
	if conv.Text != "Hi! How can I help?" {
		t.Errorf("unexpected text %q", conv.Text)
	}
}

func TestClassifyDoubtWithQuiz(t *testing.T) {
	payload := `{
		"response_type": "doubt_explanation",
		"explanation": "Photosynthesis converts light into chemical energy.",
		"quiz_message": "Try these to check your understanding!",
		"mcqs": [
			{"question": "q1", "options": ["a","b","c","d"], "answer": "a"},
			{"question": "q2", "options": ["a","b","c","d"], "answer": "b"},
			{"question": "q3", "options": ["a","b","c","d"], "answer": "zzz"}
		]
	}`
	env, err := classify(t, payload)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	doubt, ok := env.(DoubtExplanation)
	if !ok {
		t.Fatalf("expected DoubtExplanation, got %T", env)
	}
	if doubt.Explanation == "" || doubt.QuizIntro == "" {
		t.Error("explanation and quiz intro should both be set")
	}
	// q3's answer is not among its options; it can never be scored.
	if len(doubt.MCQs) != 2 {
		t.Errorf("expected 2 scorable questions, got %d", len(doubt.MCQs))
	}
}

func TestClassifyPerspectiveNeverCarriesQuiz(t *testing.T) {
	payload := `{
		"response_type": "perspective_explanation",
		"explanation": "There are several viewpoints on this.",
		"mcqs": [{"question": "q", "options": ["a","b"], "answer": "a"}]
	}`
	env, err := classify(t, payload)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if _, ok := env.(PerspectiveExplanation); !ok {
		t.Fatalf("expected PerspectiveExplanation, got %T", env)
	}
}

func TestClassifyUnknownTag(t *testing.T) {
	_, err := classify(t, `{"response_type":"sonnet","text":"..."}`)
	var inv *llm.ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Errorf("expected ErrInvalidResponse for unknown tag, got %v", err)
	}
}

func TestClassifyMalformedJSON(t *testing.T) {
	_, err := classify(t, `{not json`)
	var inv *llm.ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Errorf("expected ErrInvalidResponse for malformed JSON, got %v", err)
	}
}

func TestClassifyProviderErrorPropagates(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrRateLimit{}})
	c := NewClassifier(provider, DefaultConfig())
	_, err := c.Classify(context.Background(), Input{Text: "hello"})
	var rl *llm.ErrRateLimit
	if !errors.As(err, &rl) {
		t.Errorf("expected rate limit error to propagate, got %v", err)
	}
}

func TestClassifySendsSubjectAndText(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"response_type":"conversation","text":"ok"}`),
	})
	c := NewClassifier(provider, DefaultConfig())

	_, err := c.Classify(context.Background(), Input{Text: "why is the sky blue", Subject: "Physics"})
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}

	if len(provider.Calls) != 1 {
		t.Fatalf("expected exactly 1 model call, got %d", len(provider.Calls))
	}
	req := provider.Calls[0]
	if req.Schema == nil || req.Schema.Name != TurnSchema.Name {
		t.Error("turn schema not attached to the request")
	}
	content := req.Messages[0].Content
	if !strings.Contains(content, "why is the sky blue") || !strings.Contains(content, "Physics") {
		t.Errorf("user message missing text or subject: %q", content)
	}
}

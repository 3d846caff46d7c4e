package tutor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/abhisek/doubtbox/internal/llm"
	"github.com/abhisek/doubtbox/internal/mcq"
)

// ErrEmptyInput is returned when a turn has neither text nor an image.
var ErrEmptyInput = errors.New("empty input: text or image required")

// Classifier routes one learner turn to a response mode with a single model
// call. Hard failures (provider errors, unparseable output) propagate to
// the caller; structural gaps inside a well-formed reply do not, since the
// assembler degrades those.
type Classifier struct {
	provider llm.Provider
	cfg      Config
}

// NewClassifier creates a classifier backed by the given provider.
func NewClassifier(provider llm.Provider, cfg Config) *Classifier {
	return &Classifier{provider: provider, cfg: cfg}
}

// turnOutput is the raw model reply before mapping into the Envelope sum.
type turnOutput struct {
	ResponseType string      `json:"response_type"`
	Text         string      `json:"text"`
	Explanation  string      `json:"explanation"`
	MCQs         []mcqOutput `json:"mcqs"`
	QuizMessage  string      `json:"quiz_message"`
}

type mcqOutput struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
}

// Classify issues exactly one model call and maps the reply into an
// Envelope. The stated response_type is honored as-is: a missing required
// field for that tag stays missing, with no silent tag correction.
func (c *Classifier) Classify(ctx context.Context, input Input) (Envelope, error) {
	if input.Text == "" && input.Image == nil {
		return nil, ErrEmptyInput
	}

	ctx = llm.WithPurpose(ctx, "classify")

	req := llm.Request{
		System: classifySystemPrompt,
		Messages: []llm.Message{
			{
				Role:    llm.RoleUser,
				Content: buildClassifyUserMessage(input),
				Image:   input.Image,
			},
		},
		Schema:      TurnSchema,
		MaxTokens:   c.cfg.ClassifyMaxTokens,
		Temperature: c.cfg.Temperature,
	}

	resp, err := c.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("classify turn: %w", err)
	}

	var out turnOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, &llm.ErrInvalidResponse{
			Content: resp.Content,
			Err:     fmt.Errorf("parse turn response: %w", err),
		}
	}

	return mapEnvelope(out)
}

// mapEnvelope converts a raw turn into the Envelope sum type.
func mapEnvelope(out turnOutput) (Envelope, error) {
	switch out.ResponseType {
	case "conversation":
		return Conversation{Text: out.Text}, nil

	case "doubt_explanation":
		return DoubtExplanation{
			Explanation: out.Explanation,
			MCQs:        mapMCQs(out.MCQs),
			QuizIntro:   out.QuizMessage,
		}, nil

	case "perspective_explanation":
		// Perspective answers never carry a quiz, whatever the model sent.
		return PerspectiveExplanation{Explanation: out.Explanation}, nil

	default:
		return nil, &llm.ErrInvalidResponse{
			Err: fmt.Errorf("unknown response_type %q", out.ResponseType),
		}
	}
}

// mapMCQs converts raw questions, dropping any whose answer does not appear
// among its options since those could never be scored. Unexpected counts
// (fewer than 3 questions, more or fewer than 4 options) are kept as-is.
func mapMCQs(raw []mcqOutput) []mcq.MCQ {
	var out []mcq.MCQ
	for _, r := range raw {
		q := mcq.MCQ{
			Question: r.Question,
			Options:  r.Options,
			Answer:   r.Answer,
		}
		if q.Valid() {
			out = append(out, q)
		}
	}
	return out
}

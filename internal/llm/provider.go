package llm

import (
	"context"
	"encoding/base64"
	"encoding/json"
)

// Provider is the single boundary to the generative model service.
// Every tutoring feature (classification, quiz explanations) goes through
// Generate; nothing above this package knows which vendor is answering.
type Provider interface {
	// Generate sends one request to the model and returns its structured
	// response. When the request carries a Schema, Content is JSON that has
	// already been validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured with.
	ModelID() string
}

// Request describes one model invocation.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation to send. Doubtbox is single-turn: one
	// user message, optionally carrying an image of the problem.
	Messages []Message

	// Schema, when set, switches the provider to its native structured
	// output mechanism and validates the reply against the definition.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in [0, 1]. Zero means deterministic.
	Temperature float64
}

// Message is a single conversation entry.
type Message struct {
	Role    Role
	Content string

	// Image is an optional inline attachment, used when the learner uploads
	// a photo of a question. Providers encode it with their own block type.
	Image *ImageAttachment
}

// ImageAttachment is raw image data plus its MIME type.
type ImageAttachment struct {
	MIMEType string
	Data     []byte
}

// DataURI renders the attachment as a data: URI for providers that take
// images by URL.
func (a *ImageAttachment) DataURI() string {
	return "data:" + a.MIMEType + ";base64," + base64.StdEncoding.EncodeToString(a.Data)
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names a JSON Schema the model reply must conform to.
type Schema struct {
	// Name identifies the schema (tool name for Anthropic, schema name for
	// OpenAI). Kebab-case, e.g. "tutor-turn".
	Name string

	// Description tells the model what the schema represents.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response is the model's output.
type Response struct {
	// Content is the generated output. Validated JSON when the request had
	// a Schema, raw text otherwise.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens" or "error".
	StopReason string
}

// Usage tracks token counts for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

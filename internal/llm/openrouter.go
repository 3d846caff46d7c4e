package llm

import "fmt"

const openRouterBaseURL = "https://openrouter.ai/api/v1"

// NewOpenRouterProvider creates a provider for OpenRouter, which speaks the
// OpenAI wire protocol at a different base URL.
func NewOpenRouterProvider(cfg OpenRouterConfig) (*OpenAIProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openrouter API key is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = openRouterBaseURL
	}

	return NewOpenAIProvider(OpenAIConfig{
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		BaseURL: baseURL,
	})
}

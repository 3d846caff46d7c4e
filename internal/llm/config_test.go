package llm

import "testing"

func TestConfigFromEnvOverrides(t *testing.T) {
	t.Setenv("DOUBTBOX_LLM_PROVIDER", "anthropic")
	t.Setenv("DOUBTBOX_ANTHROPIC_API_KEY", "sk-test")
	t.Setenv("DOUBTBOX_ANTHROPIC_MODEL", "claude-custom")

	cfg := ConfigFromEnv()
	if cfg.Provider != "anthropic" {
		t.Errorf("provider = %q", cfg.Provider)
	}
	if cfg.Anthropic.APIKey != "sk-test" || cfg.Anthropic.Model != "claude-custom" {
		t.Errorf("anthropic config not picked up: %+v", cfg.Anthropic)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestValidateRequiresKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "openai"
	cfg.OpenAI.APIKey = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing API key")
	}

	cfg.Provider = "nonsense"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown provider")
	}

	cfg.Provider = "mock"
	if err := cfg.Validate(); err != nil {
		t.Errorf("mock provider needs no key: %v", err)
	}
}

func TestDiscoverConfigPriority(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("OPENROUTER_API_KEY", "")

	if _, ok := DiscoverConfig(); ok {
		t.Error("no keys set: discovery should fail")
	}

	t.Setenv("ANTHROPIC_API_KEY", "sk-a")
	cfg, ok := DiscoverConfig()
	if !ok || cfg.Provider != "anthropic" {
		t.Errorf("expected anthropic discovery, got %q (ok=%v)", cfg.Provider, ok)
	}

	// Gemini outranks anthropic when both are present.
	t.Setenv("GEMINI_API_KEY", "sk-g")
	cfg, ok = DiscoverConfig()
	if !ok || cfg.Provider != "gemini" {
		t.Errorf("expected gemini to win discovery, got %q", cfg.Provider)
	}
}

package cmd

import (
	"fmt"

	"github.com/abhisek/doubtbox/internal/app"
	"github.com/abhisek/doubtbox/internal/llm"
	"github.com/abhisek/doubtbox/internal/store"
	"github.com/abhisek/doubtbox/internal/tutor"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
// Unlike the inspection commands, the tutor cannot do anything useful
// without a model, so a missing provider is fatal here.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo := st.EventRepo()

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		return fmt.Errorf("LLM provider not configured: %w\n\nSet GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY or OPENROUTER_API_KEY", err)
	}

	cfg := tutor.DefaultConfig()
	opts := app.Options{
		Classifier: tutor.NewClassifier(provider, cfg),
		Explainer:  tutor.NewExplainer(provider, cfg),
		EventRepo:  eventRepo,
	}

	return app.Run(opts)
}

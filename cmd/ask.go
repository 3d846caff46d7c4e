package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/doubtbox/internal/imaging"
	"github.com/abhisek/doubtbox/internal/llm"
	"github.com/abhisek/doubtbox/internal/store"
	"github.com/abhisek/doubtbox/internal/subjects"
	"github.com/abhisek/doubtbox/internal/tutor"
	"github.com/spf13/cobra"
)

// askCmd answers a single doubt without entering the TUI. Handy for
// scripting and for checking prompts quickly.
var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask one doubt and print the answer",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		subject, _ := cmd.Flags().GetString("subject")
		imagePath, _ := cmd.Flags().GetString("image")

		if !subjects.Valid(subject) {
			return fmt.Errorf("unknown subject %q (see doubtbox chat for the list)", subject)
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		provider, err := llm.NewProviderFromEnv(cmd.Context(), st.EventRepo())
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		input := tutor.Input{
			Text:    strings.Join(args, " "),
			Subject: subject,
		}
		if imagePath != "" {
			img, err := imaging.Load(imagePath)
			if err != nil {
				return err
			}
			input.Image = img
		}

		classifier := tutor.NewClassifier(provider, tutor.DefaultConfig())
		env, err := classifier.Classify(cmd.Context(), input)
		if err != nil {
			return fmt.Errorf("answer doubt: %w", err)
		}

		assembled := tutor.Assemble(env)
		fmt.Println(assembled.Text)

		if len(assembled.MCQs) > 0 {
			fmt.Println()
			for i, q := range assembled.MCQs {
				fmt.Printf("Q%d. %s\n", i+1, q.Question)
				for j, opt := range q.Options {
					fmt.Printf("   %c) %s\n", 'A'+j, opt)
				}
			}
			fmt.Println("\nRun doubtbox chat to play the quiz interactively.")
		}

		return nil
	},
}

func init() {
	askCmd.Flags().StringP("subject", "s", subjects.Default, "Subject context for the answer")
	askCmd.Flags().StringP("image", "i", "", "Path to an image of the problem")
}

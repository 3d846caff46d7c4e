package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/doubtbox/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show study statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		st, err := s.EventRepo().Stats(context.Background())
		if err != nil {
			return fmt.Errorf("query stats: %w", err)
		}

		if st.TotalChatTurns == 0 && st.TotalQuizzes == 0 {
			fmt.Println("Nothing recorded yet. Run doubtbox chat to get started.")
			return nil
		}

		sep := strings.Repeat("─", 48)

		fmt.Println("Chat")
		fmt.Println(sep)
		fmt.Printf("%-32s  %6d\n", "Turns", st.TotalChatTurns)
		for kind, n := range st.TurnsByKind {
			fmt.Printf("%-32s  %6d\n", "  "+kind, n)
		}

		fmt.Println()
		fmt.Println("Quizzes")
		fmt.Println(sep)
		fmt.Printf("%-32s  %6d\n", "Completed runs", st.TotalQuizzes)
		fmt.Printf("%-32s  %6d\n", "Questions answered", st.QuizQuestions)
		fmt.Printf("%-32s  %6d\n", "Answered correctly", st.QuizCorrect)
		if st.QuizQuestions > 0 {
			fmt.Printf("%-32s  %5d%%\n", "Accuracy", 100*st.QuizCorrect/st.QuizQuestions)
		}

		fmt.Println()
		fmt.Println("Model usage")
		fmt.Println(sep)
		fmt.Printf("%-32s  %6d\n", "Calls", st.TotalLLMCalls)
		fmt.Printf("%-32s  %6d\n", "Failed calls", st.FailedLLMCalls)
		fmt.Printf("%-32s  %6d\n", "Input tokens", st.TotalInputTokens)
		fmt.Printf("%-32s  %6d\n", "Output tokens", st.TotalOutputTokens)

		return nil
	},
}

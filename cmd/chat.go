package cmd

import (
	"github.com/spf13/cobra"
)

// chatCmd is an explicit alias for the default action.
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start a tutoring chat",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskdesk/internal/cli"
	"github.com/thenoetrevino/taskdesk/internal/cli/auth"
	"github.com/thenoetrevino/taskdesk/internal/cli/task"
	"github.com/thenoetrevino/taskdesk/internal/cli/tutorial"
	"github.com/thenoetrevino/taskdesk/internal/launcher"
)

var apiURL string

var rootCmd = &cobra.Command{
	Use:   "taskdesk",
	Short: "taskdesk - a terminal client for a tasks API",
	Long: `taskdesk manages your tasks on a remote tasks API.

Run it without arguments for the interactive interface, or use the auth and
task subcommands from scripts.`,
	SilenceUsage: true,
	// Subcommands report their own errors; main prints the rest
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if apiURL != "" {
			cmd.SetContext(cli.WithAPIURL(cmd.Context(), apiURL))
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return launcher.Launch(cmd.Context(), apiURL)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "API base URL (overrides config and TASKDESK_API_URL)")

	rootCmd.AddCommand(auth.AuthCmd())
	rootCmd.AddCommand(task.TaskCmd())
	rootCmd.AddCommand(tutorial.TutorialCmd())
	rootCmd.AddCommand(daemonCmd())
}

// Execute runs the root command. ctx is cancelled on interrupt.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

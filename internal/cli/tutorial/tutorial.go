// Package tutorial prints the scripting guide
package tutorial

import (
	_ "embed"
	"fmt"

	"github.com/spf13/cobra"
)

//go:embed tutorial.md
var tutorialContent string

// TutorialCmd returns the tutorial command
func TutorialCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tutorial",
		Short: "Print the taskdesk workflow guide",
		Long: `Print a short markdown guide to the auth and task commands,
their flags and exit codes. Useful as context for scripts and agents.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), tutorialContent)
		},
	}
	return cmd
}

package task

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskdesk/internal/cli"
	"github.com/thenoetrevino/taskdesk/internal/cli/styles"
	"github.com/thenoetrevino/taskdesk/internal/validation"
)

// StatusCmd returns the task status subcommand
func StatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status <task_id> <new|in_progress|completed>",
		Short: "Change only the status of a task",
		Long: `Change the status of a task without touching its other fields.

Examples:
  taskdesk task status 42 in_progress
  taskdesk task status 42 completed --quiet
`,
		Args: cobra.ExactArgs(2),
		RunE: runStatus,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	taskID, err := parseTaskID(args[0])
	if err != nil {
		return formatter.Fail("VALIDATION_ERROR", err)
	}
	status, err := validation.Status(args[1])
	if err != nil {
		return formatter.Fail("VALIDATION_ERROR", err)
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail("INITIALIZATION_ERROR", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	// The current status is unknown here, so the request is always sent
	if err := cliInstance.App.TaskService.UpdateStatus(ctx, taskID, "", status); err != nil {
		return formatter.Fail("STATUS_ERROR", err)
	}

	if quietMode {
		fmt.Printf("%d\n", taskID)
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"task_id": taskID,
			"status":  status,
		})
	}

	fmt.Printf("Task %d is now %s\n", taskID, styles.StatusBadge(status))
	return nil
}

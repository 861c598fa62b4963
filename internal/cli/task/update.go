package task

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskdesk/internal/cli"
	"github.com/thenoetrevino/taskdesk/internal/cli/styles"
)

// UpdateCmd returns the task update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <task_id>",
		Short: "Replace every field of a task",
		Long: `Replace the title, description, status and deadline of a task.
All four are required, as with create.

Examples:
  taskdesk task update 42 --title="Fix bug" --description="Crash on save" --status=in_progress --deadline=2026-03-05
`,
		Args: cobra.ExactArgs(1),
		RunE: runUpdate,
	}

	addTaskInputFlags(cmd, "")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	taskID, err := parseTaskID(args[0])
	if err != nil {
		return formatter.Fail("VALIDATION_ERROR", err)
	}

	in, err := taskInputFromFlags(cmd)
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

	task, err := cliInstance.App.TaskService.Update(ctx, taskID, in)
	if err != nil {
		return formatter.Fail("UPDATE_ERROR", err)
	}

	if quietMode || jsonOutput {
		return formatter.Success(task)
	}

	fmt.Println(styles.SuccessStyle.Render("Task updated"))
	fmt.Println(styles.RenderTaskCard(task))
	return nil
}

package task

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskdesk/internal/cli"
	"github.com/thenoetrevino/taskdesk/internal/cli/styles"
)

// CreateCmd returns the task create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new task",
		Long: `Create a new task. Every field is required; status defaults to "new".

Examples:
  # Human-readable output
  taskdesk task create --title="Fix bug" --description="Crash on save" --deadline=2026-03-01

  # Quiet mode for bash capture
  TASK_ID=$(taskdesk task create --title="Fix bug" --description="..." --deadline=2026-03-01 --quiet)
`,
		RunE: runCreate,
	}

	addTaskInputFlags(cmd, "new")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

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

	task, err := cliInstance.App.TaskService.Create(ctx, in)
	if err != nil {
		return formatter.Fail("CREATE_ERROR", err)
	}

	if quietMode || jsonOutput {
		return formatter.Success(task)
	}

	fmt.Println(styles.SuccessStyle.Render("Task created"))
	fmt.Println(styles.RenderTaskCard(task))
	return nil
}

package task

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskdesk/internal/cli"
	"github.com/thenoetrevino/taskdesk/internal/cli/styles"
	"github.com/thenoetrevino/taskdesk/internal/models"
	"github.com/thenoetrevino/taskdesk/internal/validation"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List one page of your tasks, newest first.

Examples:
  taskdesk task list
  taskdesk task list --search=docs --status=in_progress
  taskdesk task list --deadline=2026-03-01 --limit=30 --page=2 --json
`,
		RunE: runList,
	}

	cmd.Flags().String("search", "", "Only tasks whose title or description contains this text")
	cmd.Flags().Int("page", 1, "Page number")
	cmd.Flags().Int("limit", 0, "Page size: 10, 20 or 30 (default from config)")
	cmd.Flags().String("status", "", "Only tasks with this status")
	cmd.Flags().String("deadline", "", "Only tasks due on or before this date (YYYY-MM-DD)")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail("INITIALIZATION_ERROR", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	q, err := queryFromFlags(cmd, cliInstance.App.Config().PageSize)
	if err != nil {
		return formatter.Fail("VALIDATION_ERROR", err)
	}

	page, err := cliInstance.App.TaskService.List(ctx, q)
	if err != nil {
		return formatter.Fail("TASK_FETCH_ERROR", err)
	}

	if quietMode {
		for _, t := range page.Tasks {
			fmt.Printf("%d\n", t.ID)
		}
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"tasks":   page.Tasks,
			"total":   page.Total,
			"page":    q.Page,
			"limit":   q.Limit,
			"pages":   page.TotalPages(q.Limit),
		})
	}

	if len(page.Tasks) == 0 {
		fmt.Println("No tasks found")
		return nil
	}

	fmt.Println(styles.TaskTable(page.Tasks, 40))
	fmt.Println(styles.SubtitleStyle.Render(fmt.Sprintf("\nPage %d of %d (%d tasks)", q.Page, page.TotalPages(q.Limit), page.Total)))
	return nil
}

// queryFromFlags builds the listing query, defaulting the page size to defaultLimit
func queryFromFlags(cmd *cobra.Command, defaultLimit int) (models.TaskQuery, error) {
	search, _ := cmd.Flags().GetString("search")
	page, _ := cmd.Flags().GetInt("page")
	limit, _ := cmd.Flags().GetInt("limit")
	statusFlag, _ := cmd.Flags().GetString("status")
	deadlineFlag, _ := cmd.Flags().GetString("deadline")

	if limit == 0 {
		limit = defaultLimit
	}

	errs := &validation.Errors{}
	errs.Add("limit", validation.PageSize(limit))
	status, err := validation.OptionalStatus(statusFlag)
	errs.Add("status", err)
	deadline, err := validation.OptionalDeadline(deadlineFlag)
	errs.Add("deadline", err)

	q := models.TaskQuery{
		Search:   search,
		Page:     page,
		Limit:    limit,
		Status:   status,
		Deadline: deadline,
	}
	return q, errs.Err()
}

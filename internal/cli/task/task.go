// Package task holds the "taskdesk task" subcommands
package task

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskdesk/internal/models"
	taskservice "github.com/thenoetrevino/taskdesk/internal/services/task"
	"github.com/thenoetrevino/taskdesk/internal/validation"
)

// TaskCmd returns the task parent command
func TaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(StatusCmd())

	return cmd
}

// parseTaskID parses a positional task ID
func parseTaskID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s", taskservice.ErrInvalidTaskID, arg)
	}
	return id, nil
}

// taskInputFromFlags reads the task body flags and reports every invalid one
func taskInputFromFlags(cmd *cobra.Command) (models.TaskInput, error) {
	title, _ := cmd.Flags().GetString("title")
	description, _ := cmd.Flags().GetString("description")
	statusFlag, _ := cmd.Flags().GetString("status")
	deadlineFlag, _ := cmd.Flags().GetString("deadline")

	errs := &validation.Errors{}
	status, err := validation.Status(statusFlag)
	errs.Add("status", err)
	deadline, err := validation.Deadline(deadlineFlag)
	errs.Add("deadline", err)

	in := models.TaskInput{
		Title:       title,
		Description: description,
		Status:      status,
		Deadline:    deadline,
	}
	if err := errs.Err(); err != nil {
		return in, err
	}
	return in, validation.TaskInput(in)
}

// addTaskInputFlags registers the flags of a task body
func addTaskInputFlags(cmd *cobra.Command, defaultStatus string) {
	cmd.Flags().String("title", "", "Task title (required)")
	cmd.Flags().String("description", "", "Task description (required)")
	cmd.Flags().String("status", defaultStatus, "Status: new, in_progress, completed")
	cmd.Flags().String("deadline", "", "Deadline as YYYY-MM-DD (required)")
}

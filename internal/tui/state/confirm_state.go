package state

import "github.com/thenoetrevino/taskdesk/internal/models"

// DeleteConfirmState holds the task a delete confirmation was opened for.
// The list may refetch while the dialog is up, so the target is never
// re-read from the selection.
type DeleteConfirmState struct {
	taskID int
	title  string
}

// NewDeleteConfirmState creates an empty DeleteConfirmState.
func NewDeleteConfirmState() *DeleteConfirmState {
	return &DeleteConfirmState{}
}

// Open targets task.
func (s *DeleteConfirmState) Open(task *models.Task) {
	s.taskID = task.ID
	s.title = task.Title
}

// TaskID returns the ID of the task to delete, 0 when closed.
func (s *DeleteConfirmState) TaskID() int {
	return s.taskID
}

// Title returns the title the task had when the dialog opened.
func (s *DeleteConfirmState) Title() string {
	return s.title
}

// Reset clears the target.
func (s *DeleteConfirmState) Reset() {
	*s = DeleteConfirmState{}
}

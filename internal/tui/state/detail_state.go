package state

import (
	"charm.land/bubbles/v2/viewport"
	"github.com/thenoetrevino/taskdesk/internal/models"
)

// DetailState holds the task shown in the detail view and the scrollable
// viewport its rendered description lives in.
type DetailState struct {
	task     *models.Task
	Viewport viewport.Model
}

// NewDetailState creates an empty DetailState.
func NewDetailState() *DetailState {
	return &DetailState{Viewport: viewport.New()}
}

// Task returns the task on display, or nil.
func (s *DetailState) Task() *models.Task {
	return s.task
}

// Open shows task with its pre-rendered body sized to width x height.
func (s *DetailState) Open(task models.Task, body string, width, height int) {
	s.task = &task
	s.Viewport.SetWidth(width)
	s.Viewport.SetHeight(height)
	s.Viewport.SetContent(body)
	s.Viewport.GotoTop()
}

// Close drops the task.
func (s *DetailState) Close() {
	s.task = nil
}

package state

import "github.com/thenoetrevino/taskdesk/internal/models"

// StatusPickerState manages the inline status change popup.
type StatusPickerState struct {
	taskID  int
	current models.Status
	cursor  int
}

// NewStatusPickerState creates a new StatusPickerState with default values.
func NewStatusPickerState() *StatusPickerState {
	return &StatusPickerState{}
}

// Open targets task and puts the cursor on its current status.
func (s *StatusPickerState) Open(task *models.Task) {
	s.taskID = task.ID
	s.current = task.Status
	s.cursor = 0
	for i, status := range models.Statuses {
		if status == task.Status {
			s.cursor = i
			break
		}
	}
}

// TaskID returns the ID of the task being changed.
func (s *StatusPickerState) TaskID() int {
	return s.taskID
}

// Current returns the status the task had when the picker opened.
func (s *StatusPickerState) Current() models.Status {
	return s.current
}

// Options returns the statuses to choose from.
func (s *StatusPickerState) Options() []models.Status {
	return models.Statuses
}

// Cursor returns the current cursor position.
func (s *StatusPickerState) Cursor() int {
	return s.cursor
}

// MoveUp moves the cursor up one position if possible.
func (s *StatusPickerState) MoveUp() {
	if s.cursor > 0 {
		s.cursor--
	}
}

// MoveDown moves the cursor down one position if possible.
func (s *StatusPickerState) MoveDown() {
	if s.cursor < len(models.Statuses)-1 {
		s.cursor++
	}
}

// Selected returns the status under the cursor.
func (s *StatusPickerState) Selected() models.Status {
	return models.Statuses[s.cursor]
}

// Reset resets all state to default values.
func (s *StatusPickerState) Reset() {
	*s = StatusPickerState{}
}

// PageSizePickerState manages the page size popup.
type PageSizePickerState struct {
	cursor int
}

// NewPageSizePickerState creates a new PageSizePickerState.
func NewPageSizePickerState() *PageSizePickerState {
	return &PageSizePickerState{}
}

// Open puts the cursor on the active page size.
func (s *PageSizePickerState) Open(current int) {
	s.cursor = 0
	for i, size := range models.PageSizes {
		if size == current {
			s.cursor = i
			break
		}
	}
}

// Options returns the page sizes to choose from.
func (s *PageSizePickerState) Options() []int {
	return models.PageSizes
}

// Cursor returns the current cursor position.
func (s *PageSizePickerState) Cursor() int {
	return s.cursor
}

// MoveUp moves the cursor up one position if possible.
func (s *PageSizePickerState) MoveUp() {
	if s.cursor > 0 {
		s.cursor--
	}
}

// MoveDown moves the cursor down one position if possible.
func (s *PageSizePickerState) MoveDown() {
	if s.cursor < len(models.PageSizes)-1 {
		s.cursor++
	}
}

// Selected returns the page size under the cursor.
func (s *PageSizePickerState) Selected() int {
	return models.PageSizes[s.cursor]
}

package state

import (
	"testing"

	"github.com/thenoetrevino/taskdesk/internal/models"
)

func TestStatusPicker_OpensOnCurrentStatus(t *testing.T) {
	s := NewStatusPickerState()
	s.Open(&models.Task{ID: 7, Status: models.StatusCompleted})

	if s.TaskID() != 7 {
		t.Errorf("TaskID() = %d, want 7", s.TaskID())
	}
	if s.Selected() != models.StatusCompleted {
		t.Errorf("Selected() = %q, want %q", s.Selected(), models.StatusCompleted)
	}

	s.MoveDown()
	if s.Selected() != models.StatusCompleted {
		t.Error("MoveDown() past the last option should be a no-op")
	}

	s.MoveUp()
	if s.Selected() != models.StatusInProgress {
		t.Errorf("Selected() after MoveUp = %q, want %q", s.Selected(), models.StatusInProgress)
	}
	if s.Current() != models.StatusCompleted {
		t.Error("Current() must not follow the cursor")
	}
}

func TestStatusPicker_Reset(t *testing.T) {
	s := NewStatusPickerState()
	s.Open(&models.Task{ID: 3, Status: models.StatusInProgress})
	s.Reset()

	if s.TaskID() != 0 {
		t.Errorf("TaskID() after Reset = %d, want 0", s.TaskID())
	}
}

func TestPageSizePicker(t *testing.T) {
	s := NewPageSizePickerState()
	s.Open(20)

	if s.Selected() != 20 {
		t.Errorf("Selected() = %d, want 20", s.Selected())
	}

	s.MoveDown()
	s.MoveDown()
	if s.Selected() != 30 {
		t.Errorf("Selected() = %d, want 30", s.Selected())
	}

	// Unknown sizes start at the top
	s.Open(50)
	if s.Selected() != 10 {
		t.Errorf("Selected() after Open(50) = %d, want 10", s.Selected())
	}
}

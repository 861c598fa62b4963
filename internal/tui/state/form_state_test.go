package state

import (
	"testing"
	"time"

	"github.com/thenoetrevino/taskdesk/internal/models"
)

func TestFormState_ToggleAuthMode(t *testing.T) {
	s := NewFormState()
	s.AuthEmail = "user@example.com"
	s.AuthPassword = "secret1"

	s.ToggleAuthMode()
	if s.AuthMode != RegisterForm {
		t.Errorf("AuthMode = %v, want Register", s.AuthMode)
	}
	if s.AuthEmail != "user@example.com" || s.AuthPassword != "" {
		t.Error("toggling should keep the email and clear the password")
	}

	s.ToggleAuthMode()
	if s.AuthMode != LoginForm {
		t.Errorf("AuthMode = %v, want Login", s.AuthMode)
	}
}

func TestFormState_LoadTask(t *testing.T) {
	s := NewFormState()
	deadline := time.Date(2030, 1, 15, 0, 0, 0, 0, time.Local)

	s.LoadTask(&models.Task{ID: 4, Title: "t", Description: "d", Status: models.StatusCompleted, Deadline: deadline})
	if s.EditingTaskID != 4 || s.FormTitle != "t" || s.FormStatus != models.StatusCompleted {
		t.Errorf("LoadTask did not pre-fill: %+v", s)
	}
	if s.FormDeadline != "2030-01-15" {
		t.Errorf("FormDeadline = %q, want 2030-01-15", s.FormDeadline)
	}

	s.LoadTask(nil)
	if s.EditingTaskID != 0 || s.FormTitle != "" || s.FormStatus != models.StatusNew || !s.FormConfirm {
		t.Errorf("LoadTask(nil) should start a blank create form: %+v", s)
	}
}

func TestFormState_LoadFilters(t *testing.T) {
	s := NewFormState()
	s.LoadFilters(models.TaskFilters{
		Status:   models.StatusNew,
		Deadline: time.Date(2030, 2, 1, 0, 0, 0, 0, time.Local),
	})

	if s.FilterStatus != models.StatusNew || s.FilterDeadline != "2030-02-01" {
		t.Errorf("LoadFilters = %q %q", s.FilterStatus, s.FilterDeadline)
	}

	s.LoadFilters(models.TaskFilters{})
	if s.FilterStatus != "" || s.FilterDeadline != "" {
		t.Error("LoadFilters with no filters should clear the form")
	}
}

package state

import (
	"charm.land/huh/v2"
	"github.com/thenoetrevino/taskdesk/internal/models"
)

// AuthFormMode selects what the auth screen submits
type AuthFormMode int

const (
	LoginForm AuthFormMode = iota
	RegisterForm
)

// String returns the screen title for the mode
func (m AuthFormMode) String() string {
	if m == RegisterForm {
		return "Register"
	}
	return "Login"
}

// FormState holds the huh forms and the values they are bound to.
type FormState struct {
	// Auth screen
	AuthForm     *huh.Form
	AuthMode     AuthFormMode
	AuthEmail    string
	AuthPassword string
	AuthPending  bool

	// Task create / edit modal
	TaskForm        *huh.Form
	EditingTaskID   int // 0 when creating
	FormTitle       string
	FormDescription string
	FormStatus      models.Status
	FormDeadline    string
	FormConfirm     bool

	// Filter modal
	FilterForm     *huh.Form
	FilterStatus   models.Status
	FilterDeadline string
}

// NewFormState creates a FormState with nothing open.
func NewFormState() *FormState {
	return &FormState{}
}

// ToggleAuthMode switches between login and register, keeping the email.
func (s *FormState) ToggleAuthMode() {
	if s.AuthMode == LoginForm {
		s.AuthMode = RegisterForm
	} else {
		s.AuthMode = LoginForm
	}
	s.AuthPassword = ""
}

// ResetAuth clears the credentials, used after a registration and on logout.
func (s *FormState) ResetAuth(mode AuthFormMode) {
	s.AuthMode = mode
	s.AuthEmail = ""
	s.AuthPassword = ""
	s.AuthPending = false
}

// Credentials returns the values the auth form is bound to.
func (s *FormState) Credentials() models.Credentials {
	return models.Credentials{Email: s.AuthEmail, Password: s.AuthPassword}
}

// LoadTask pre-fills the task form. A nil task starts a blank create form.
func (s *FormState) LoadTask(task *models.Task) {
	s.FormConfirm = true
	if task == nil {
		s.EditingTaskID = 0
		s.FormTitle = ""
		s.FormDescription = ""
		s.FormStatus = models.StatusNew
		s.FormDeadline = ""
		return
	}
	s.EditingTaskID = task.ID
	s.FormTitle = task.Title
	s.FormDescription = task.Description
	s.FormStatus = task.Status
	s.FormDeadline = task.DeadlineDate()
}

// ClearTaskForm closes the task form.
func (s *FormState) ClearTaskForm() {
	s.TaskForm = nil
	s.EditingTaskID = 0
}

// LoadFilters pre-fills the filter form from the active filters.
func (s *FormState) LoadFilters(f models.TaskFilters) {
	s.FilterStatus = f.Status
	s.FilterDeadline = ""
	if !f.Deadline.IsZero() {
		s.FilterDeadline = f.Deadline.Local().Format(models.DeadlineLayout)
	}
}

// ClearFilterForm closes the filter form.
func (s *FormState) ClearFilterForm() {
	s.FilterForm = nil
}

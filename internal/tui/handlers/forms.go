package handlers

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"github.com/thenoetrevino/taskdesk/internal/models"
	"github.com/thenoetrevino/taskdesk/internal/tui"
	"github.com/thenoetrevino/taskdesk/internal/tui/huhforms"
	"github.com/thenoetrevino/taskdesk/internal/tui/modelops"
	"github.com/thenoetrevino/taskdesk/internal/tui/state"
	"github.com/thenoetrevino/taskdesk/internal/validation"
)

// descriptionLines is the height of the description field in the task form
const descriptionLines = 6

// ============================================================================
// TASK FORM
// ============================================================================

// OpenTaskForm opens the task modal. A nil task opens a blank create form;
// otherwise every field is pre-filled for editing.
func OpenTaskForm(m *tui.Model, task *models.Task) tea.Cmd {
	m.FormState.LoadTask(task)
	return buildTaskForm(m)
}

func buildTaskForm(m *tui.Model) tea.Cmd {
	fs := m.FormState
	fs.TaskForm = huhforms.CreateTaskForm(
		&fs.FormTitle,
		&fs.FormDescription,
		&fs.FormStatus,
		&fs.FormDeadline,
		&fs.FormConfirm,
		descriptionLines,
		m.Config.KeyMappings.SaveForm,
	).WithTheme(huhforms.CreateTheme(
		m.Config.ColorScheme,
		huhforms.TaskFormFrame(m.Config.ColorScheme, fs.EditingTaskID != 0),
	))
	m.UiState.SetMode(state.TaskFormMode)
	return fs.TaskForm.Init()
}

// HandleTaskFormMode handles every message while the task modal is open.
func HandleTaskFormMode(m *tui.Model, msg tea.Msg) tea.Cmd {
	if m.FormState.TaskForm == nil {
		m.UiState.SetMode(state.NormalMode)
		return nil
	}

	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.FormState.ClearTaskForm()
			m.UiState.SetMode(state.NormalMode)
			return nil
		case m.Config.KeyMappings.SaveForm:
			m.FormState.FormConfirm = true
			return SubmitTaskForm(m)
		}
	}

	model, cmd := m.FormState.TaskForm.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		m.FormState.TaskForm = f
	}

	if m.FormState.TaskForm.State == huh.StateCompleted {
		return SubmitTaskForm(m)
	}
	return cmd
}

// TaskInputFromForm converts the form values into a request body.
// All four fields are required.
func TaskInputFromForm(fs *state.FormState) (models.TaskInput, error) {
	errs := &validation.Errors{}

	in := models.TaskInput{
		Title:       strings.TrimSpace(fs.FormTitle),
		Description: strings.TrimSpace(fs.FormDescription),
		Status:      fs.FormStatus,
	}

	errs.Add("title", validation.Required("title", in.Title))
	errs.Add("description", validation.Required("description", in.Description))
	if _, err := validation.Status(string(in.Status)); err != nil {
		errs.Add("status", err)
	}
	deadline, err := validation.Deadline(fs.FormDeadline)
	errs.Add("deadline", err)
	in.Deadline = deadline

	return in, errs.Err()
}

// SubmitTaskForm sends the create or update request. On a validation failure
// nothing is sent and the form reopens with the user's values.
func SubmitTaskForm(m *tui.Model) tea.Cmd {
	fs := m.FormState
	if !fs.FormConfirm {
		fs.ClearTaskForm()
		m.UiState.SetMode(state.NormalMode)
		return nil
	}

	in, err := TaskInputFromForm(fs)
	if err != nil {
		return tea.Batch(
			modelops.Notify(m, state.LevelError, requiredFieldsMessage(err)),
			buildTaskForm(m),
		)
	}

	id := fs.EditingTaskID
	fs.ClearTaskForm()
	m.UiState.SetMode(state.NormalMode)
	return modelops.SaveTask(m, id, in)
}

// ============================================================================
// FILTER FORM
// ============================================================================

// OpenFilterForm opens the filter modal pre-filled with the active filters.
func OpenFilterForm(m *tui.Model) tea.Cmd {
	m.FormState.LoadFilters(m.ListState.Query().Filters())
	return buildFilterForm(m)
}

func buildFilterForm(m *tui.Model) tea.Cmd {
	fs := m.FormState
	fs.FilterForm = huhforms.CreateFilterForm(&fs.FilterStatus, &fs.FilterDeadline, m.Config.KeyMappings.SaveForm).
		WithTheme(huhforms.CreateTheme(m.Config.ColorScheme, m.Config.ColorScheme.Accent))
	m.UiState.SetMode(state.FilterFormMode)
	return fs.FilterForm.Init()
}

// HandleFilterFormMode handles every message while the filter modal is open.
func HandleFilterFormMode(m *tui.Model, msg tea.Msg) tea.Cmd {
	if m.FormState.FilterForm == nil {
		m.UiState.SetMode(state.NormalMode)
		return nil
	}

	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.FormState.ClearFilterForm()
			m.UiState.SetMode(state.NormalMode)
			return nil
		case m.Config.KeyMappings.SaveForm:
			return ApplyFilters(m)
		}
	}

	model, cmd := m.FormState.FilterForm.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		m.FormState.FilterForm = f
	}

	if m.FormState.FilterForm.State == huh.StateCompleted {
		return ApplyFilters(m)
	}
	return cmd
}

// ApplyFilters replaces the active filters with the form values and reloads
// from page 1.
func ApplyFilters(m *tui.Model) tea.Cmd {
	fs := m.FormState

	status, err := validation.OptionalStatus(string(fs.FilterStatus))
	if err != nil {
		return tea.Batch(modelops.Notify(m, state.LevelError, err.Error()), buildFilterForm(m))
	}
	deadline, err := validation.OptionalDeadline(fs.FilterDeadline)
	if err != nil {
		return tea.Batch(modelops.Notify(m, state.LevelError, err.Error()), buildFilterForm(m))
	}

	fs.ClearFilterForm()
	m.UiState.SetMode(state.NormalMode)
	m.ListState.SetQuery(m.ListState.Query().WithFilters(models.TaskFilters{Status: status, Deadline: deadline}))
	return modelops.FetchTasks(m)
}

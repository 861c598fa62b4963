package handlers

import (
	"errors"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/taskdesk/internal/api"
	"github.com/thenoetrevino/taskdesk/internal/events"
	taskservice "github.com/thenoetrevino/taskdesk/internal/services/task"
	"github.com/thenoetrevino/taskdesk/internal/tui"
	"github.com/thenoetrevino/taskdesk/internal/tui/modelops"
	"github.com/thenoetrevino/taskdesk/internal/tui/state"
	"github.com/thenoetrevino/taskdesk/internal/validation"
)

// ============================================================================
// API RESULTS
// ============================================================================

func handleTasksLoaded(m *tui.Model, msg tui.TasksLoadedMsg) tea.Cmd {
	if !m.ListState.IsCurrent(msg.Seq) || !m.IsAuthenticated() {
		return nil
	}
	if msg.Err != nil {
		m.ListState.FinishRequest()
		return modelops.NotifyError(m, "Failed to load tasks", msg.Err)
	}

	// A delete can empty the last page; step back to the new last page
	query := m.ListState.Query()
	if last := msg.Page.TotalPages(query.Limit); len(msg.Page.Tasks) == 0 && msg.Page.Total > 0 && last < query.Page {
		query.Page = last
		m.ListState.SetQuery(query)
		return modelops.FetchTasks(m)
	}

	m.ListState.SetPage(*msg.Page)
	return nil
}

func handleTaskSaved(m *tui.Model, msg tui.TaskSavedMsg) tea.Cmd {
	if msg.Err != nil {
		if validation.IsValidationError(msg.Err) {
			return modelops.Notify(m, state.LevelError, requiredFieldsMessage(msg.Err))
		}
		return modelops.NotifyError(m, "Failed to save task", msg.Err)
	}
	if msg.Created {
		return modelops.Notify(m, state.LevelSuccess, "Task created successfully")
	}
	return modelops.Notify(m, state.LevelSuccess, "Task updated successfully")
}

func handleTaskDeleted(m *tui.Model, msg tui.TaskDeletedMsg) tea.Cmd {
	if msg.Err != nil {
		return modelops.NotifyError(m, "Failed to delete task", msg.Err)
	}
	return modelops.Notify(m, state.LevelSuccess, "Task deleted successfully")
}

func handleStatusUpdated(m *tui.Model, msg tui.StatusUpdatedMsg) tea.Cmd {
	if errors.Is(msg.Err, taskservice.ErrStatusUnchanged) {
		return nil
	}
	if msg.Err != nil {
		return modelops.NotifyError(m, "Failed to update task status", msg.Err)
	}
	return modelops.Notify(m, state.LevelSuccess, "Task status updated successfully")
}

// ============================================================================
// SESSION RESULTS
// ============================================================================

func handleAuthResult(m *tui.Model, msg tui.AuthResultMsg) tea.Cmd {
	m.FormState.AuthPending = false

	if msg.Err != nil {
		summary := "Login failed"
		if msg.Mode == state.RegisterForm {
			summary = "Registration failed"
		}
		m.FormState.AuthPassword = ""
		return tea.Batch(modelops.NotifyError(m, summary, msg.Err), openAuthForm(m))
	}

	if msg.Mode == state.RegisterForm {
		m.FormState.ResetAuth(state.LoginForm)
		return tea.Batch(
			modelops.Notify(m, state.LevelSuccess, "Registration successful! Please log in"),
			openAuthForm(m),
		)
	}

	return enterTaskList(m, msg.Email)
}

func handleLoggedOut(m *tui.Model, msg tui.LoggedOutMsg) tea.Cmd {
	if msg.Err != nil {
		return modelops.NotifyError(m, "Failed to log out", msg.Err)
	}
	return tea.Batch(enterAuthScreen(m), modelops.Notify(m, state.LevelInfo, "Logged out"))
}

// handleSessionReloaded resyncs the authenticated flag after another client
// logged in or out against the same API
func handleSessionReloaded(m *tui.Model, msg tui.SessionReloadedMsg) tea.Cmd {
	if msg.Err != nil {
		return modelops.NotifyError(m, "Failed to read session", msg.Err)
	}

	switch {
	case msg.Authenticated && !m.IsAuthenticated():
		return tea.Batch(enterTaskList(m, msg.Email), modelops.Notify(m, state.LevelInfo, "Logged in from another window"))
	case !msg.Authenticated && m.IsAuthenticated():
		return tea.Batch(enterAuthScreen(m), modelops.Notify(m, state.LevelInfo, "Logged out from another window"))
	case msg.Authenticated && msg.Email != m.Email:
		// Another account replaced the session; its tasks are different
		m.Email = msg.Email
		m.ListState.Reset()
		return modelops.FetchTasks(m)
	}
	return nil
}

// enterTaskList switches to the task table and loads the first page
func enterTaskList(m *tui.Model, email string) tea.Cmd {
	m.Email = email
	m.FormState.ResetAuth(state.LoginForm)
	m.FormState.AuthForm = nil
	m.ListState.Reset()
	m.SearchState.Clear()
	m.UiState.SetMode(state.NormalMode)
	return modelops.FetchTasks(m)
}

// enterAuthScreen drops everything tied to the old session and shows the auth form
func enterAuthScreen(m *tui.Model) tea.Cmd {
	m.Email = ""
	m.ListState.Reset()
	m.SearchState.Clear()
	m.SearchState.Input.Blur()
	m.FormState.ClearTaskForm()
	m.FormState.ClearFilterForm()
	m.DetailState.Close()
	m.StatusPickerState.Reset()
	m.FormState.ResetAuth(state.LoginForm)
	m.UiState.SetMode(state.AuthMode)
	return openAuthForm(m)
}

// ============================================================================
// INVALIDATION AND LIVE EVENTS
// ============================================================================

func handleTagsInvalidated(m *tui.Model, msg tui.TagsInvalidatedMsg) tea.Cmd {
	var cmds []tea.Cmd
	if !msg.Remote {
		cmds = append(cmds, modelops.ListenForInvalidations(m))
	}
	if m.IsAuthenticated() && api.Affects(msg.Tags, []api.Tag{api.TagTask}) {
		cmds = append(cmds, modelops.FetchTasks(m))
	}
	return tea.Batch(cmds...)
}

func handleRemoteEvent(m *tui.Model, msg tui.RemoteEventMsg) tea.Cmd {
	cmds := []tea.Cmd{modelops.SubscribeToEvents(m)}

	switch msg.Event.Type {
	case events.EventTagsInvalidated:
		tags := make([]api.Tag, 0, len(msg.Event.Tags))
		for _, tag := range msg.Event.Tags {
			tags = append(tags, api.Tag(tag))
		}
		cmds = append(cmds, handleTagsInvalidated(m, tui.TagsInvalidatedMsg{Tags: tags, Remote: true}))
	case events.EventSessionChanged:
		cmds = append(cmds, modelops.ReloadSession(m))
	}

	return tea.Batch(cmds...)
}

// requiredFieldsMessage names the first failing field of a validation error
func requiredFieldsMessage(err error) string {
	const prefix = "Please fill in all required fields"

	var errs *validation.Errors
	if errors.As(err, &errs) {
		if first := errs.First(); first != nil {
			return prefix + ": " + first.Message
		}
	}
	var fe *validation.FieldError
	if errors.As(err, &fe) {
		return prefix + ": " + fe.Message
	}
	return prefix
}

// Package modelops holds the commands that talk to the API on behalf of the
// model. Each command captures what it needs up front and reports back with a
// message, so no model state is touched off the update goroutine.
package modelops

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/taskdesk/internal/models"
	"github.com/thenoetrevino/taskdesk/internal/tui"
	"github.com/thenoetrevino/taskdesk/internal/tui/state"
)

// FetchTasks requests the page described by the current query
func FetchTasks(m *tui.Model) tea.Cmd {
	query := m.ListState.Query()
	seq := m.ListState.BeginRequest()
	service := m.App.TaskService

	return func() tea.Msg {
		ctx, cancel := m.RequestContext()
		defer cancel()

		page, err := service.List(ctx, query)
		if err != nil {
			slog.Error("failed to list tasks", "error", err, "page", query.Page)
		}
		return tui.TasksLoadedMsg{Seq: seq, Page: page, Err: err}
	}
}

// SaveTask creates a task when id is 0 and replaces task id otherwise
func SaveTask(m *tui.Model, id int, in models.TaskInput) tea.Cmd {
	service := m.App.TaskService

	return func() tea.Msg {
		ctx, cancel := m.RequestContext()
		defer cancel()

		if id == 0 {
			task, err := service.Create(ctx, in)
			if err != nil {
				slog.Error("failed to create task", "error", err)
			}
			return tui.TaskSavedMsg{Created: true, Task: task, Err: err}
		}

		task, err := service.Update(ctx, id, in)
		if err != nil {
			slog.Error("failed to update task", "error", err, "task_id", id)
		}
		return tui.TaskSavedMsg{Task: task, Err: err}
	}
}

// DeleteTask deletes task id
func DeleteTask(m *tui.Model, id int) tea.Cmd {
	service := m.App.TaskService

	return func() tea.Msg {
		ctx, cancel := m.RequestContext()
		defer cancel()

		err := service.Delete(ctx, id)
		if err != nil {
			slog.Error("failed to delete task", "error", err, "task_id", id)
		}
		return tui.TaskDeletedMsg{ID: id, Err: err}
	}
}

// UpdateStatus moves task id from one status to another
func UpdateStatus(m *tui.Model, id int, from, to models.Status) tea.Cmd {
	service := m.App.TaskService

	return func() tea.Msg {
		ctx, cancel := m.RequestContext()
		defer cancel()

		err := service.UpdateStatus(ctx, id, from, to)
		if err != nil {
			slog.Error("failed to update task status", "error", err, "task_id", id)
		}
		return tui.StatusUpdatedMsg{ID: id, Status: to, Err: err}
	}
}

// Authenticate logs in or registers, depending on mode
func Authenticate(m *tui.Model, mode state.AuthFormMode, creds models.Credentials) tea.Cmd {
	service := m.App.AuthService

	return func() tea.Msg {
		ctx, cancel := m.RequestContext()
		defer cancel()

		var err error
		if mode == state.RegisterForm {
			err = service.Register(ctx, creds)
		} else {
			err = service.Login(ctx, creds)
		}
		if err != nil {
			slog.Error("authentication failed", "mode", mode.String(), "error", err)
		}
		return tui.AuthResultMsg{Mode: mode, Email: creds.Email, Err: err}
	}
}

// Logout clears the stored session
func Logout(m *tui.Model) tea.Cmd {
	service := m.App.AuthService

	return func() tea.Msg {
		ctx, cancel := m.RequestContext()
		defer cancel()

		err := service.Logout(ctx)
		if err != nil {
			slog.Error("failed to log out", "error", err)
		}
		return tui.LoggedOutMsg{Err: err}
	}
}

// ReloadSession rereads the stored session after another client changed it
func ReloadSession(m *tui.Model) tea.Cmd {
	store := m.App.Session

	return func() tea.Msg {
		ctx, cancel := m.RequestContext()
		defer cancel()

		session, err := store.Reload(ctx)
		if err != nil {
			slog.Error("failed to reload session", "error", err)
			return tui.SessionReloadedMsg{Err: err}
		}
		if session == nil || session.Token == "" {
			return tui.SessionReloadedMsg{}
		}
		return tui.SessionReloadedMsg{Authenticated: true, Email: session.Email}
	}
}

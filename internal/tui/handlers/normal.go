package handlers

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/taskdesk/internal/models"
	"github.com/thenoetrevino/taskdesk/internal/tui"
	"github.com/thenoetrevino/taskdesk/internal/tui/modelops"
	"github.com/thenoetrevino/taskdesk/internal/tui/state"
)

// ============================================================================
// NORMAL MODE HANDLERS
// ============================================================================

// HandleNormalMode dispatches key events in NormalMode to specific handlers.
func HandleNormalMode(m *tui.Model, msg tea.KeyPressMsg) tea.Cmd {
	key := msg.String()
	km := m.Config.KeyMappings

	switch key {
	case km.Quit, "ctrl+c":
		return tea.Quit
	case km.ShowHelp:
		m.UiState.SetMode(state.HelpMode)
		return nil
	case km.AddTask:
		return OpenTaskForm(m, nil)
	case km.EditTask:
		return withSelectedTask(m, func(task *models.Task) tea.Cmd { return OpenTaskForm(m, task) })
	case km.DeleteTask:
		return withSelectedTask(m, func(task *models.Task) tea.Cmd {
			m.DeleteConfirmState.Open(task)
			m.UiState.SetMode(state.DeleteConfirmMode)
			return nil
		})
	case km.ChangeStatus:
		return withSelectedTask(m, func(task *models.Task) tea.Cmd {
			m.StatusPickerState.Open(task)
			m.UiState.SetMode(state.StatusPickerMode)
			return nil
		})
	case km.ViewTask:
		return withSelectedTask(m, func(task *models.Task) tea.Cmd {
			openDetail(m, *task)
			m.UiState.SetMode(state.DetailMode)
			return nil
		})
	case km.Search:
		return HandleEnterSearch(m)
	case km.Filter:
		return OpenFilterForm(m)
	case km.ResetFilters:
		return handleResetFilters(m)
	case km.PageSize:
		m.PageSizePickerState.Open(m.ListState.Query().Limit)
		m.UiState.SetMode(state.PageSizePickerMode)
		return nil
	case km.Refresh:
		return modelops.FetchTasks(m)
	case km.PrevTask, "up":
		m.ListState.MoveUp()
		return nil
	case km.NextTask, "down":
		m.ListState.MoveDown()
		return nil
	case km.PrevPage, "left":
		if m.ListState.PrevPage() {
			return modelops.FetchTasks(m)
		}
		return nil
	case km.NextPage, "right":
		if m.ListState.NextPage() {
			return modelops.FetchTasks(m)
		}
		return nil
	case km.Logout:
		m.UiState.SetMode(state.LogoutConfirmMode)
		return nil
	case "esc":
		if m.SearchState.Value() != "" {
			return clearSearch(m)
		}
	}

	return nil
}

// withSelectedTask runs fn on the highlighted task, or tells the user there is none
func withSelectedTask(m *tui.Model, fn func(*models.Task) tea.Cmd) tea.Cmd {
	task := m.ListState.SelectedTask()
	if task == nil {
		return modelops.Notify(m, state.LevelInfo, "No task selected")
	}
	return fn(task)
}

// handleResetFilters clears status and deadline filters and returns to page 1.
func handleResetFilters(m *tui.Model) tea.Cmd {
	query := m.ListState.Query()
	if query.Filters().IsZero() {
		return nil
	}
	m.ListState.SetQuery(query.WithFilters(models.TaskFilters{}))
	return modelops.FetchTasks(m)
}

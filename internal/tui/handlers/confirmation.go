package handlers

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/taskdesk/internal/tui"
	"github.com/thenoetrevino/taskdesk/internal/tui/modelops"
	"github.com/thenoetrevino/taskdesk/internal/tui/state"
)

// ============================================================================
// CONFIRMATION HANDLERS
// ============================================================================

// HandleDeleteConfirm handles task deletion confirmation. It deletes the task
// the dialog was opened for, whatever is selected now.
func HandleDeleteConfirm(m *tui.Model, msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "y", "Y":
		taskID := m.DeleteConfirmState.TaskID()
		m.DeleteConfirmState.Reset()
		m.UiState.SetMode(state.NormalMode)
		if taskID == 0 {
			return nil
		}
		return modelops.DeleteTask(m, taskID)
	case "n", "N", "esc":
		m.DeleteConfirmState.Reset()
		m.UiState.SetMode(state.NormalMode)
	}
	return nil
}

// HandleLogoutConfirm handles logout confirmation.
func HandleLogoutConfirm(m *tui.Model, msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "y", "Y":
		m.UiState.SetMode(state.NormalMode)
		return modelops.Logout(m)
	case "n", "N", "esc":
		m.UiState.SetMode(state.NormalMode)
	}
	return nil
}

package handlers

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/taskdesk/internal/tui"
	"github.com/thenoetrevino/taskdesk/internal/tui/modelops"
	"github.com/thenoetrevino/taskdesk/internal/tui/state"
)

// ============================================================================
// STATUS PICKER
// ============================================================================

// HandleStatusPickerMode handles key events in status picker mode.
func HandleStatusPickerMode(m *tui.Model, msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc", m.Config.KeyMappings.Quit:
		m.StatusPickerState.Reset()
		m.UiState.SetMode(state.NormalMode)
	case "enter":
		return confirmStatusChange(m)
	case "j", "down":
		m.StatusPickerState.MoveDown()
	case "k", "up":
		m.StatusPickerState.MoveUp()
	}
	return nil
}

// confirmStatusChange sends exactly one PATCH with the chosen status.
// Choosing the status the task already has sends nothing.
func confirmStatusChange(m *tui.Model) tea.Cmd {
	picker := m.StatusPickerState
	taskID, from, to := picker.TaskID(), picker.Current(), picker.Selected()

	picker.Reset()
	m.UiState.SetMode(state.NormalMode)

	if taskID == 0 || from == to {
		return nil
	}
	return modelops.UpdateStatus(m, taskID, from, to)
}

// ============================================================================
// PAGE SIZE PICKER
// ============================================================================

// HandlePageSizePickerMode handles key events in page size picker mode.
func HandlePageSizePickerMode(m *tui.Model, msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc", m.Config.KeyMappings.Quit:
		m.UiState.SetMode(state.NormalMode)
	case "enter":
		return confirmPageSize(m)
	case "j", "down":
		m.PageSizePickerState.MoveDown()
	case "k", "up":
		m.PageSizePickerState.MoveUp()
	}
	return nil
}

// confirmPageSize applies the chosen page size and goes back to page 1
func confirmPageSize(m *tui.Model) tea.Cmd {
	m.UiState.SetMode(state.NormalMode)

	size := m.PageSizePickerState.Selected()
	query := m.ListState.Query()
	if size == query.Limit {
		return nil
	}
	m.ListState.SetQuery(query.WithLimit(size))
	return modelops.FetchTasks(m)
}

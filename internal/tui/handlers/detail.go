package handlers

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/taskdesk/internal/models"
	"github.com/thenoetrevino/taskdesk/internal/tui"
	"github.com/thenoetrevino/taskdesk/internal/tui/components"
	"github.com/thenoetrevino/taskdesk/internal/tui/layers"
	"github.com/thenoetrevino/taskdesk/internal/tui/state"
)

// ============================================================================
// DETAIL VIEW HANDLERS
// ============================================================================

// openDetail renders the description of task into the detail viewport,
// sized for the current terminal
func openDetail(m *tui.Model, task models.Task) {
	width := layers.ModalWidth(m.UiState.Width(), 3, 4, layers.DetailMinWidth, layers.DetailMaxWidth)
	bodyWidth := max(width-6, 10) // border and padding
	bodyHeight := max(m.UiState.Height()-layers.DetailChromeHeight-4, layers.DetailMinBodyHeight)

	body := components.RenderDescription(components.DescriptionProps{
		Description: task.Description,
		Width:       bodyWidth,
	})
	m.DetailState.Open(task, body, bodyWidth, bodyHeight)
}

// HandleDetailMode closes the detail view or scrolls its description.
func HandleDetailMode(m *tui.Model, msg tea.KeyPressMsg) tea.Cmd {
	km := m.Config.KeyMappings
	switch msg.String() {
	case "esc", km.Quit, km.ViewTask:
		m.DetailState.Close()
		m.UiState.SetMode(state.NormalMode)
		return nil
	case km.EditTask:
		task := m.DetailState.Task()
		m.DetailState.Close()
		if task == nil {
			m.UiState.SetMode(state.NormalMode)
			return nil
		}
		return OpenTaskForm(m, task)
	}

	var cmd tea.Cmd
	m.DetailState.Viewport, cmd = m.DetailState.Viewport.Update(msg)
	return cmd
}

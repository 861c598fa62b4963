package render

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/taskdesk/internal/tui"
	"github.com/thenoetrevino/taskdesk/internal/tui/components"
	"github.com/thenoetrevino/taskdesk/internal/tui/layers"
)

// RenderDeleteConfirmLayer renders the task deletion confirmation dialog
func RenderDeleteConfirmLayer(m *tui.Model) *lipgloss.Layer {
	if m.DeleteConfirmState.TaskID() == 0 {
		return nil
	}

	confirmBox := components.DeleteBoxStyle.
		Width(layers.ConfirmWidth).
		Render(fmt.Sprintf("Delete '%s'?\n\n[y]es  [n]o", m.DeleteConfirmState.Title()))

	return layers.CreateCenteredLayer(confirmBox, m.UiState.Width(), m.UiState.Height())
}

// RenderLogoutConfirmLayer renders the logout confirmation dialog
func RenderLogoutConfirmLayer(m *tui.Model) *lipgloss.Layer {
	who := "Log out?"
	if m.Email != "" {
		who = fmt.Sprintf("Log out %s?", m.Email)
	}

	confirmBox := components.EditBoxStyle.
		Width(layers.ConfirmWidth).
		Render(who + "\n\n[y]es  [n]o")

	return layers.CreateCenteredLayer(confirmBox, m.UiState.Width(), m.UiState.Height())
}

package render

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/taskdesk/internal/tui"
	"github.com/thenoetrevino/taskdesk/internal/tui/components"
	"github.com/thenoetrevino/taskdesk/internal/tui/layers"
)

// RenderDetailLayer renders the selected task with its markdown description
// in a scrollable viewport
func RenderDetailLayer(m *tui.Model) *lipgloss.Layer {
	task := m.DetailState.Task()
	if task == nil {
		return nil
	}

	deadline := task.DeadlineDate()
	if deadline == "" {
		deadline = "none"
	}

	meta := fmt.Sprintf("%s  ·  deadline %s", components.StatusBadge(task.Status), deadline)
	km := m.Config.KeyMappings
	hint := fmt.Sprintf("↑/↓: scroll  %s: edit  esc: close", km.EditTask)

	content := lipgloss.JoinVertical(lipgloss.Left,
		components.TitleStyle.Render(fmt.Sprintf("#%d %s", task.ID, task.Title)),
		meta,
		"",
		m.DetailState.Viewport.View(),
		"",
		components.SubtleStyle.Render(hint),
	)

	width := layers.ModalWidth(m.UiState.Width(), 3, 4, layers.DetailMinWidth, layers.DetailMaxWidth)
	box := components.DetailBoxStyle.Width(width).Render(content)
	return layers.CreateCenteredLayer(box, m.UiState.Width(), m.UiState.Height())
}

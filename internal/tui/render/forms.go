package render

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/taskdesk/internal/tui"
	"github.com/thenoetrevino/taskdesk/internal/tui/components"
	"github.com/thenoetrevino/taskdesk/internal/tui/layers"
)

// RenderTaskFormLayer renders the create/edit task form as a modal
func RenderTaskFormLayer(m *tui.Model) *lipgloss.Layer {
	fs := m.FormState
	if fs.TaskForm == nil {
		return nil
	}

	title := "New Task"
	style := components.FormBoxStyle
	if fs.EditingTaskID != 0 {
		title = fmt.Sprintf("Edit Task #%d", fs.EditingTaskID)
		style = components.EditBoxStyle
	}

	hint := fmt.Sprintf("%s: save  esc: cancel", m.Config.KeyMappings.SaveForm)
	content := lipgloss.JoinVertical(lipgloss.Left,
		components.TitleStyle.Render(title),
		"",
		fs.TaskForm.View(),
		"",
		components.SubtleStyle.Render(hint),
	)

	width := layers.ModalWidth(m.UiState.Width(), 2, 3, layers.FormMinWidth, layers.FormMaxWidth)
	box := style.Width(width).Render(content)
	return layers.CreateCenteredLayer(box, m.UiState.Width(), m.UiState.Height())
}

// RenderFilterFormLayer renders the status/deadline filter form as a modal
func RenderFilterFormLayer(m *tui.Model) *lipgloss.Layer {
	fs := m.FormState
	if fs.FilterForm == nil {
		return nil
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		components.TitleStyle.Render("Filter Tasks"),
		"",
		fs.FilterForm.View(),
		"",
		components.SubtleStyle.Render("enter: apply  esc: cancel"),
	)

	width := layers.ModalWidth(m.UiState.Width(), 1, 2, layers.FormMinWidth, layers.FormMaxWidth)
	box := components.FormBoxStyle.Width(width).Render(content)
	return layers.CreateCenteredLayer(box, m.UiState.Width(), m.UiState.Height())
}

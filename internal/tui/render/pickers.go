package render

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/taskdesk/internal/tui"
	"github.com/thenoetrevino/taskdesk/internal/tui/components"
	"github.com/thenoetrevino/taskdesk/internal/tui/layers"
)

// pickerRow renders one option line with a cursor marker
func pickerRow(label string, selected, current bool) string {
	cursor := "  "
	if selected {
		cursor = "> "
	}
	if current {
		label += components.SubtleStyle.Render(" (current)")
	}
	row := cursor + label
	if selected {
		return lipgloss.NewStyle().Bold(true).Render(row)
	}
	return row
}

func renderPicker(m *tui.Model, title string, rows []string) *lipgloss.Layer {
	content := lipgloss.JoinVertical(lipgloss.Left,
		components.TitleStyle.Render(title),
		"",
		strings.Join(rows, "\n"),
		"",
		components.SubtleStyle.Render("enter: select  esc: cancel"),
	)
	box := components.PickerBoxStyle.Width(layers.PickerWidth).Render(content)
	return layers.CreateCenteredLayer(box, m.UiState.Width(), m.UiState.Height())
}

// RenderStatusPickerLayer renders the inline status change picker
func RenderStatusPickerLayer(m *tui.Model) *lipgloss.Layer {
	picker := m.StatusPickerState
	rows := make([]string, 0, len(picker.Options()))
	for i, status := range picker.Options() {
		rows = append(rows, pickerRow(components.StatusBadge(status), i == picker.Cursor(), status == picker.Current()))
	}
	return renderPicker(m, fmt.Sprintf("Status of #%d", picker.TaskID()), rows)
}

// RenderPageSizePickerLayer renders the tasks-per-page picker
func RenderPageSizePickerLayer(m *tui.Model) *lipgloss.Layer {
	picker := m.PageSizePickerState
	limit := m.ListState.Query().Limit
	rows := make([]string, 0, len(picker.Options()))
	for i, size := range picker.Options() {
		rows = append(rows, pickerRow(fmt.Sprintf("%d per page", size), i == picker.Cursor(), size == limit))
	}
	return renderPicker(m, "Page Size", rows)
}

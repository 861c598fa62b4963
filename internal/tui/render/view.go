// Package render draws the TUI model. It never mutates state.
package render

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/taskdesk/internal/tui"
	"github.com/thenoetrevino/taskdesk/internal/tui/components"
	"github.com/thenoetrevino/taskdesk/internal/tui/notifications"
	"github.com/thenoetrevino/taskdesk/internal/tui/state"
	"github.com/thenoetrevino/taskdesk/internal/tui/theme"
)

// View is the main view dispatcher that renders the current state of the application.
// This implements the "View" part of the Model-View-Update pattern.
func View(m *tui.Model) tea.View {
	// Wait for terminal size to be initialized
	if m.UiState.Width() == 0 {
		view := tea.NewView("Loading...")
		view.AltScreen = true
		return view
	}

	var layers []*lipgloss.Layer
	if m.UiState.Mode() == state.AuthMode {
		layers = append(layers, lipgloss.NewLayer(fill(m)), RenderAuthLayer(m))
	} else {
		layers = append(layers, lipgloss.NewLayer(ViewTaskList(m)))
		if m.UiState.IsModal() {
			layers = append(layers, modalLayer(m))
		}
	}

	layers = append(layers, m.NotificationState.GetLayers(notifications.RenderFromState)...)

	view := tea.NewView(lipgloss.NewCanvas(compact(layers)...).Render())
	view.AltScreen = true
	view.BackgroundColor = lipgloss.Color(theme.Background)
	return view
}

// modalLayer returns the overlay for the current mode
func modalLayer(m *tui.Model) *lipgloss.Layer {
	switch m.UiState.Mode() {
	case state.TaskFormMode:
		return RenderTaskFormLayer(m)
	case state.FilterFormMode:
		return RenderFilterFormLayer(m)
	case state.StatusPickerMode:
		return RenderStatusPickerLayer(m)
	case state.PageSizePickerMode:
		return RenderPageSizePickerLayer(m)
	case state.DeleteConfirmMode:
		return RenderDeleteConfirmLayer(m)
	case state.LogoutConfirmMode:
		return RenderLogoutConfirmLayer(m)
	case state.DetailMode:
		return RenderDetailLayer(m)
	case state.HelpMode:
		return RenderHelpLayer(m)
	}
	return nil
}

// compact drops nil layers; the centered layer helpers return nil for empty content
func compact(layers []*lipgloss.Layer) []*lipgloss.Layer {
	out := layers[:0]
	for _, l := range layers {
		if l != nil {
			out = append(out, l)
		}
	}
	return out
}

// fill is a blank screen-sized base so overlays have something to sit on
func fill(m *tui.Model) string {
	line := strings.Repeat(" ", m.UiState.Width())
	lines := make([]string, max(m.UiState.Height(), 1))
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// ViewTaskList renders the base screen: title, search bar, task table,
// pagination line and status bar.
func ViewTaskList(m *tui.Model) string {
	width := m.UiState.Width()
	query := m.ListState.Query()

	header := components.TitleStyle.Render("Tasks")

	var search string
	if m.UiState.Mode() == state.SearchMode || m.SearchState.Value() != "" {
		search = m.SearchState.Input.View()
	} else {
		search = components.SubtleStyle.Render("press " + m.Config.KeyMappings.Search + " to search")
	}

	var body string
	switch {
	case len(m.ListState.Tasks()) > 0:
		body = components.RenderTaskTable(components.TaskTableProps{
			Tasks:    m.ListState.Tasks(),
			Selected: m.ListState.Selected(),
			Width:    width,
			Height:   m.UiState.ContentHeight(),
		})
	case m.ListState.Loading() || !m.ListState.Loaded():
		body = components.SubtleStyle.Render("Loading tasks...")
	default:
		body = components.SubtleStyle.Render("No tasks found")
	}

	pagination := components.RenderPagination(components.PaginationProps{
		Page:    query.Page,
		Pages:   m.ListState.TotalPages(),
		Total:   m.ListState.Total(),
		Limit:   query.Limit,
		Filters: query.Filters(),
		Search:  query.Search,
	})

	statusBar := components.RenderStatusBar(components.StatusBarProps{
		Width:     width,
		Email:     m.Email,
		APIURL:    m.Config.APIURL,
		Connected: m.ConnectionState.Status() == state.Connected,
		HelpKey:   m.Config.KeyMappings.ShowHelp,
	})

	main := lipgloss.JoinVertical(lipgloss.Left,
		header,
		search,
		"",
		body,
	)

	// Pin pagination and status bar to the bottom
	mainHeight := max(m.UiState.Height()-3, lipgloss.Height(main))
	main = lipgloss.NewStyle().Width(width).Height(mainHeight).Render(main)

	return lipgloss.JoinVertical(lipgloss.Left, main, "", pagination, statusBar)
}

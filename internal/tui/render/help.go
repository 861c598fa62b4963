package render

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/taskdesk/internal/config"
	"github.com/thenoetrevino/taskdesk/internal/tui"
	"github.com/thenoetrevino/taskdesk/internal/tui/components"
	"github.com/thenoetrevino/taskdesk/internal/tui/layers"
)

type helpSection struct {
	title    string
	bindings [][2]string
}

// helpSections lists the key bindings from the user's configuration
func helpSections(km config.KeyMappings) []helpSection {
	return []helpSection{
		{"Tasks", [][2]string{
			{km.AddTask, "new task"},
			{km.EditTask, "edit task"},
			{km.DeleteTask, "delete task"},
			{km.ChangeStatus, "change status"},
			{km.ViewTask, "view details"},
		}},
		{"Listing", [][2]string{
			{km.Search, "search"},
			{km.Filter, "filter by status/deadline"},
			{km.ResetFilters, "clear filters"},
			{km.PageSize, "tasks per page"},
			{km.Refresh, "reload"},
		}},
		{"Navigation", [][2]string{
			{km.PrevTask + "/" + km.NextTask, "previous/next task"},
			{km.PrevPage + "/" + km.NextPage, "previous/next page"},
		}},
		{"Other", [][2]string{
			{km.SaveForm, "save form"},
			{km.Logout, "log out"},
			{km.ShowHelp, "toggle help"},
			{km.Quit, "quit"},
		}},
	}
}

// RenderHelpLayer renders the key binding reference
func RenderHelpLayer(m *tui.Model) *lipgloss.Layer {
	var b strings.Builder
	b.WriteString(components.TitleStyle.Render("Keyboard Shortcuts"))
	for _, section := range helpSections(m.Config.KeyMappings) {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Bold(true).Render(section.title))
		for _, binding := range section.bindings {
			fmt.Fprintf(&b, "\n  %-10s %s", binding[0], binding[1])
		}
	}
	b.WriteString("\n\n")
	b.WriteString(components.SubtleStyle.Render("press esc to close"))

	box := components.HelpBoxStyle.Width(layers.HelpWidth).Render(b.String())
	return layers.CreateCenteredLayer(box, m.UiState.Width(), m.UiState.Height())
}

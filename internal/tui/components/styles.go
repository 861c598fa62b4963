package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/taskdesk/internal/models"
	"github.com/thenoetrevino/taskdesk/internal/tui/theme"
)

// Modal box styles, built from the theme by InitStyles
var (
	FormBoxStyle    lipgloss.Style
	EditBoxStyle    lipgloss.Style
	DeleteBoxStyle  lipgloss.Style
	PickerBoxStyle  lipgloss.Style
	HelpBoxStyle    lipgloss.Style
	DetailBoxStyle  lipgloss.Style
	AuthBoxStyle    lipgloss.Style
	TitleStyle      lipgloss.Style
	SubtleStyle     lipgloss.Style
	HeaderCellStyle lipgloss.Style
	SelectedRow     lipgloss.Style
)

func init() {
	InitStyles()
}

// InitStyles rebuilds the styles after theme.Init
func InitStyles() {
	box := func(color string) lipgloss.Style {
		return lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(color)).
			Padding(1, 2)
	}

	FormBoxStyle = box(theme.Create)
	EditBoxStyle = box(theme.Edit)
	DeleteBoxStyle = box(theme.Delete)
	PickerBoxStyle = box(theme.Highlight)
	HelpBoxStyle = box(theme.Highlight)
	DetailBoxStyle = box(theme.TableBorder)
	AuthBoxStyle = box(theme.Highlight)

	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Title))
	SubtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))
	HeaderCellStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.HeaderFg))
	SelectedRow = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.SelectedFg)).
		Background(lipgloss.Color(theme.SelectedBg))
}

// StatusBadge renders the status label in its theme color
func StatusBadge(status models.Status) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.StatusColor(status))).
		Bold(true).
		Render(status.Label())
}

package styles

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/truncate"
	"github.com/thenoetrevino/taskdesk/internal/config"
	"github.com/thenoetrevino/taskdesk/internal/models"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 80

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Status:", "Deadline:"
	ValueStyle    lipgloss.Style
	HeaderStyle   lipgloss.Style

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style

	statusColors = map[models.Status]string{}
)

func init() {
	Init(config.DefaultColorScheme())
}

// Init initializes all CLI styles with the given color scheme
func Init(colors config.ColorScheme) {
	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Accent)).
		Padding(1, 2).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal))

	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.HeaderFg))

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.SuccessFg)).
		Background(lipgloss.Color(colors.SuccessBg)).
		Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.ErrorFg)).
		Background(lipgloss.Color(colors.ErrorBg)).
		Padding(0, 1)

	WarningStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.WarningFg)).
		Background(lipgloss.Color(colors.WarningBg)).
		Padding(0, 1)

	statusColors = map[models.Status]string{
		models.StatusNew:        colors.StatusNew,
		models.StatusInProgress: colors.StatusInProgress,
		models.StatusCompleted:  colors.StatusCompleted,
	}
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// StatusBadge renders the status label in its theme color
func StatusBadge(status models.Status) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(statusColors[status])).
		Render(status.Label())
}

// TaskTable renders tasks as aligned plain rows: ID, title, status, deadline.
// Titles longer than titleWidth are truncated with an ellipsis.
func TaskTable(tasks []models.Task, titleWidth int) string {
	var b strings.Builder

	header := fmt.Sprintf("%-6s %-*s %-12s %s", "ID", titleWidth, "TITLE", "STATUS", "DEADLINE")
	b.WriteString(HeaderStyle.Render(header))
	b.WriteString("\n")

	for _, t := range tasks {
		title := truncate.StringWithTail(t.Title, uint(titleWidth), "…")
		// Pad before styling so escape codes do not break alignment
		status := StatusBadge(t.Status) + strings.Repeat(" ", max(0, 12-len(t.Status.Label())))
		fmt.Fprintf(&b, "%-6d %-*s %s %s\n", t.ID, titleWidth, title, status, t.DeadlineDate())
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderTaskCard renders every field of one task in a bordered card
func RenderTaskCard(t *models.Task) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(fmt.Sprintf("#%d %s", t.ID, t.Title)))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s %s\n", LabelStyle.Render("Status:  "), StatusBadge(t.Status))
	fmt.Fprintf(&b, "%s %s\n", LabelStyle.Render("Deadline:"), ValueStyle.Render(t.DeadlineDate()))
	if t.Description != "" {
		b.WriteString("\n")
		b.WriteString(ValueStyle.Render(t.Description))
	}
	return CardStyle.Render(strings.TrimRight(b.String(), "\n"))
}

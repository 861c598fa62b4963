package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/taskdesk/internal/tui/theme"
)

type StatusBarProps struct {
	Width     int
	Email     string
	APIURL    string
	Connected bool
	HelpKey   string
}

// RenderStatusBar renders a one-line status bar: who is logged in against
// which API on the left, live-sync state and the help hint on the right
func RenderStatusBar(props StatusBarProps) string {
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.StatusBarFg)).
		Background(lipgloss.Color(theme.StatusBarBg))

	left := " taskdesk"
	if props.Email != "" {
		left += " · " + props.Email
	}
	if props.APIURL != "" {
		left += " @ " + props.APIURL
	}

	live := "○ offline"
	if props.Connected {
		live = "● live"
	}
	right := live + " · press " + keyLabel(props.HelpKey) + " for help "

	gapWidth := max(props.Width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return style.Render(left + strings.Repeat(" ", gapWidth) + right)
}

func keyLabel(k string) string {
	if k == " " {
		return "space"
	}
	return k
}

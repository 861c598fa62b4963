package modelops

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/taskdesk/internal/api"
	"github.com/thenoetrevino/taskdesk/internal/tui"
	"github.com/thenoetrevino/taskdesk/internal/tui/state"
)

// Notify shows a toast and schedules its removal
func Notify(m *tui.Model, level state.NotificationLevel, message string) tea.Cmd {
	id := m.NotificationState.Add(level, message)
	return ExpireNotification(id)
}

// NotifyError shows "summary: server message" as an error toast
func NotifyError(m *tui.Model, summary string, err error) tea.Cmd {
	if msg := api.Message(err); msg != "" {
		summary += ": " + msg
	}
	return Notify(m, state.LevelError, summary)
}

package modelops

import (
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/taskdesk/internal/tui"
)

// searchDebounce is how long typing must pause before the search is sent
const searchDebounce = 300 * time.Millisecond

// ListenForInvalidations waits for the next tag invalidation from this
// process's own mutations. Re-issue it after every TagsInvalidatedMsg.
func ListenForInvalidations(m *tui.Model) tea.Cmd {
	return func() tea.Msg {
		select {
		case tags := <-m.Invalidations:
			return tui.TagsInvalidatedMsg{Tags: tags}
		case <-m.Ctx.Done():
			return nil
		}
	}
}

// SubscribeToEvents waits for the next event from the daemon.
// Returns nil if EventChan is not initialized.
func SubscribeToEvents(m *tui.Model) tea.Cmd {
	if m.EventChan == nil {
		return nil
	}

	return func() tea.Msg {
		select {
		case event, ok := <-m.EventChan:
			if !ok {
				slog.Info("event channel closed")
				return tui.EventStreamClosedMsg{}
			}
			return tui.RemoteEventMsg{Event: event}
		case <-m.Ctx.Done():
			return nil
		}
	}
}

// ExpireNotification removes toast id after the notification TTL
func ExpireNotification(id int) tea.Cmd {
	return tea.Tick(tui.NotificationTTL, func(time.Time) tea.Msg {
		return tui.NotificationExpiredMsg{ID: id}
	})
}

// DebounceSearch fires SearchDebounceMsg for edit seq once typing pauses
func DebounceSearch(seq int) tea.Cmd {
	return tea.Tick(searchDebounce, func(time.Time) tea.Msg {
		return tui.SearchDebounceMsg{Seq: seq}
	})
}

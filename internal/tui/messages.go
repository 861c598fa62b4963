package tui

import (
	"github.com/thenoetrevino/taskdesk/internal/api"
	"github.com/thenoetrevino/taskdesk/internal/events"
	"github.com/thenoetrevino/taskdesk/internal/models"
	"github.com/thenoetrevino/taskdesk/internal/tui/state"
)

// TasksLoadedMsg carries the result of a list request
type TasksLoadedMsg struct {
	Seq  int
	Page *models.TaskPage
	Err  error
}

// TaskSavedMsg is sent after a create (ID 0 before the call) or an update
type TaskSavedMsg struct {
	Created bool
	Task    *models.Task
	Err     error
}

// TaskDeletedMsg is sent after a delete request
type TaskDeletedMsg struct {
	ID  int
	Err error
}

// StatusUpdatedMsg is sent after an inline status change
type StatusUpdatedMsg struct {
	ID     int
	Status models.Status
	Err    error
}

// AuthResultMsg is sent after a login or register request
type AuthResultMsg struct {
	Mode  state.AuthFormMode
	Email string
	Err   error
}

// LoggedOutMsg is sent after the local session was cleared
type LoggedOutMsg struct {
	Err error
}

// SessionReloadedMsg is sent after rereading the stored session, which
// another client may have changed
type SessionReloadedMsg struct {
	Authenticated bool
	Email         string
	Err           error
}

// TagsInvalidatedMsg means data providing one of Tags is stale
type TagsInvalidatedMsg struct {
	Tags   []api.Tag
	Remote bool
}

// RemoteEventMsg wraps an event received from another client through the daemon
type RemoteEventMsg struct {
	Event events.Event
}

// EventStreamClosedMsg means the daemon connection is gone for good
type EventStreamClosedMsg struct{}

// NotificationExpiredMsg removes a toast once its time is up
type NotificationExpiredMsg struct {
	ID int
}

// SearchDebounceMsg fires once typing in the search bar pauses
type SearchDebounceMsg struct {
	Seq int
}

package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/taskdesk/internal/api"
	"github.com/thenoetrevino/taskdesk/internal/events"
	"github.com/thenoetrevino/taskdesk/internal/models"
	"github.com/thenoetrevino/taskdesk/internal/tui"
	"github.com/thenoetrevino/taskdesk/internal/tui/modelops"
	"github.com/thenoetrevino/taskdesk/internal/tui/state"
)

func TestLogout_ClearsSessionAndShowsAuth(t *testing.T) {
	m, srv := setupModel(t, true)
	seedTask(t, m, "Task", models.StatusNew)

	HandleNormalMode(m, key(m.Config.KeyMappings.Logout))
	require.Equal(t, state.LogoutConfirmMode, m.UiState.Mode())

	srv.ResetRequests()
	loggedOut := mustFind[tui.LoggedOutMsg](t, run(t, HandleLogoutConfirm(m, key("y"))))
	require.NoError(t, loggedOut.Err)
	assert.Zero(t, srv.RequestCount(), "logout is local")

	run(t, Update(m, loggedOut))
	assert.Equal(t, state.AuthMode, m.UiState.Mode())
	assert.Empty(t, m.Email)
	assert.Empty(t, m.ListState.Tasks())
	assert.NotNil(t, m.FormState.AuthForm)

	session, err := m.App.Session.Current(context.Background())
	require.NoError(t, err)
	assert.True(t, session == nil || session.Token == "")
}

func TestLogoutConfirm_NoKeepsSession(t *testing.T) {
	m, _ := setupModel(t, true)
	HandleNormalMode(m, key(m.Config.KeyMappings.Logout))

	assert.Nil(t, HandleLogoutConfirm(m, key("n")))
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.True(t, m.App.Session.IsAuthenticated(context.Background()))
}

func TestTasksLoaded_IgnoredAfterLogout(t *testing.T) {
	m, _ := setupModel(t, true)
	seedTask(t, m, "Task", models.StatusNew)

	loaded := mustFind[tui.TasksLoadedMsg](t, run(t, modelops.FetchTasks(m)))
	run(t, Update(m, mustFind[tui.LoggedOutMsg](t, run(t, modelops.Logout(m)))))

	Update(m, loaded)
	assert.Empty(t, m.ListState.Tasks(), "a response for the old session is dropped")
}

func TestRemoteEvent_TagInvalidationRefetches(t *testing.T) {
	m, srv := setupModel(t, true)
	eventChan := make(chan events.Event, 1)
	m.EventChan = eventChan

	eventChan <- events.Event{Type: events.EventTagsInvalidated, Tags: []string{string(api.TagTask)}}
	remote := mustFind[tui.RemoteEventMsg](t, run(t, modelops.SubscribeToEvents(m)))

	srv.ResetRequests()
	msgs := run(t, Update(m, remote))
	mustFind[tui.TasksLoadedMsg](t, msgs)
	assert.Equal(t, []string{"GET /api/tasks"}, srv.Requests())
}

func TestRemoteEvent_UnrelatedTagsIgnored(t *testing.T) {
	m, srv := setupModel(t, true)
	eventChan := make(chan events.Event, 1)
	m.EventChan = eventChan

	msgs := run(t, Update(m, tui.RemoteEventMsg{Event: events.Event{
		Type: events.EventTagsInvalidated,
		Tags: []string{"Comment"},
	}}))

	_, fetched := find[tui.TasksLoadedMsg](msgs)
	assert.False(t, fetched)
	assert.Zero(t, srv.RequestCount())
}

func TestRemoteEvent_SessionChangedLogsOut(t *testing.T) {
	m, _ := setupModel(t, true)

	// Another window logs out against the same database
	require.NoError(t, m.App.AuthService.Logout(context.Background()))

	msgs := run(t, Update(m, tui.RemoteEventMsg{Event: events.Event{Type: events.EventSessionChanged}}))
	reloaded := mustFind[tui.SessionReloadedMsg](t, msgs)
	require.NoError(t, reloaded.Err)
	assert.False(t, reloaded.Authenticated)

	run(t, Update(m, reloaded))
	assert.Equal(t, state.AuthMode, m.UiState.Mode())
	assert.Equal(t, "Logged out from another window", lastToast(m))
}

func TestEventStreamClosed_MarksDisconnected(t *testing.T) {
	m, _ := setupModel(t, true)
	eventChan := make(chan events.Event)
	m.EventChan = eventChan
	m.ConnectionState.SetStatus(state.Connected)
	close(eventChan)

	closed := mustFind[tui.EventStreamClosedMsg](t, run(t, modelops.SubscribeToEvents(m)))
	run(t, Update(m, closed))

	assert.Equal(t, state.Disconnected, m.ConnectionState.Status())
	assert.Contains(t, lastToast(m), "Live updates stopped")
}

func TestNotificationExpires(t *testing.T) {
	m, _ := setupModel(t, true)
	modelops.Notify(m, state.LevelInfo, "hello")
	n := m.NotificationState.Last()
	require.NotNil(t, n)

	Update(m, tui.NotificationExpiredMsg{ID: n.ID})
	assert.False(t, m.NotificationState.HasAny())
}

func TestHelpMode_Toggles(t *testing.T) {
	m, _ := setupModel(t, true)

	HandleNormalMode(m, key(m.Config.KeyMappings.ShowHelp))
	assert.Equal(t, state.HelpMode, m.UiState.Mode())

	HandleHelpMode(m, key(m.Config.KeyMappings.ShowHelp))
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
}

package tui

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/taskdesk/internal/api"
	"github.com/thenoetrevino/taskdesk/internal/app"
	"github.com/thenoetrevino/taskdesk/internal/config"
	"github.com/thenoetrevino/taskdesk/internal/events"
	"github.com/thenoetrevino/taskdesk/internal/testutil"
	"github.com/thenoetrevino/taskdesk/internal/tui/state"
)

func newModel(t *testing.T, opts ...app.Option) (*Model, *testutil.APIServer) {
	t.Helper()

	srv := testutil.StartAPIServer(t)
	cfg := config.Default()
	cfg.APIURL = srv.URL
	cfg.PageSize = 20

	a, err := app.New(cfg, testutil.SetupTestDB(t), opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	m := New(ctx, a)
	t.Cleanup(m.Close)
	return m, srv
}

func TestNew_WithoutSessionStartsOnAuth(t *testing.T) {
	m, _ := newModel(t)

	assert.Equal(t, state.AuthMode, m.UiState.Mode())
	assert.False(t, m.IsAuthenticated())
	assert.Nil(t, m.EventChan)
	assert.Equal(t, state.Disconnected, m.ConnectionState.Status())
	assert.Equal(t, 20, m.ListState.Query().Limit, "page size comes from config")
}

func TestNew_ListensToEventPublisher(t *testing.T) {
	pub := testutil.NewRecordingPublisher()
	m, srv := newModel(t, app.WithEventPublisher(pub))

	require.NotNil(t, m.EventChan)
	assert.Equal(t, state.Connected, m.ConnectionState.Status())

	pub.Deliver(events.Event{Type: events.EventTagsInvalidated, Scope: srv.URL, Tags: []string{"Task"}})

	select {
	case event := <-m.EventChan:
		assert.Equal(t, []string{"Task"}, event.Tags)
	case <-time.After(time.Second):
		t.Fatal("Timeout waiting for delivered event")
	}
}

func TestInvalidationsCoalesce(t *testing.T) {
	m, _ := newModel(t)

	m.App.API.Tags().Invalidate(api.TagTask)
	m.App.API.Tags().Invalidate(api.TagTask)

	assert.Len(t, m.Invalidations, 1, "a pending invalidation absorbs the next")

	m.Close()
	<-m.Invalidations
	m.App.API.Tags().Invalidate(api.TagTask)
	assert.Empty(t, m.Invalidations, "closed models stop listening")
}

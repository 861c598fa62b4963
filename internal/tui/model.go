// Package tui is the interactive terminal client. Model holds all state;
// handlers mutates it, render draws it and core adapts it to bubbletea.
package tui

import (
	"context"
	"log/slog"
	"time"

	"github.com/thenoetrevino/taskdesk/internal/api"
	"github.com/thenoetrevino/taskdesk/internal/app"
	"github.com/thenoetrevino/taskdesk/internal/config"
	"github.com/thenoetrevino/taskdesk/internal/events"
	"github.com/thenoetrevino/taskdesk/internal/tui/components"
	"github.com/thenoetrevino/taskdesk/internal/tui/state"
	"github.com/thenoetrevino/taskdesk/internal/tui/theme"
)

// requestTimeout bounds every API call made from the UI
const requestTimeout = 15 * time.Second

// NotificationTTL is how long a toast stays on screen
const NotificationTTL = 4 * time.Second

// Model represents the application state for the TUI
type Model struct {
	Ctx    context.Context
	App    *app.App
	Config *config.Config

	UiState             *state.UIState
	ListState           *state.ListState
	FormState           *state.FormState
	SearchState         *state.SearchState
	StatusPickerState   *state.StatusPickerState
	PageSizePickerState *state.PageSizePickerState
	DeleteConfirmState  *state.DeleteConfirmState
	DetailState         *state.DetailState
	NotificationState   *state.NotificationState
	ConnectionState     *state.ConnectionState

	// Email of the logged in user, shown in the status bar
	Email string

	// EventChan carries events from other clients, nil without a daemon
	EventChan <-chan events.Event

	// Invalidations receives tags invalidated by this process's mutations
	Invalidations chan []api.Tag
	stopTags      func()
}

// New creates the model. It starts on the task list when a token is stored
// for the configured API and on the auth screen otherwise.
func New(ctx context.Context, a *app.App) *Model {
	cfg := a.Config()
	theme.Init(cfg.ColorScheme)
	components.InitStyles()

	m := &Model{
		Ctx:                 ctx,
		App:                 a,
		Config:              cfg,
		ListState:           state.NewListState(cfg.PageSize),
		FormState:           state.NewFormState(),
		SearchState:         state.NewSearchState(),
		StatusPickerState:   state.NewStatusPickerState(),
		PageSizePickerState: state.NewPageSizePickerState(),
		DeleteConfirmState:  state.NewDeleteConfirmState(),
		DetailState:         state.NewDetailState(),
		NotificationState:   state.NewNotificationState(),
		ConnectionState:     state.NewConnectionState(state.Disconnected),
		Invalidations:       make(chan []api.Tag, 1),
	}

	// Coalesce: one pending invalidation already guarantees a refetch
	m.stopTags = a.API.Tags().Subscribe(func(tags []api.Tag) {
		select {
		case m.Invalidations <- tags:
		default:
		}
	})

	mode := state.AuthMode
	rctx, cancel := m.RequestContext()
	defer cancel()
	if session, err := a.Session.Current(rctx); err != nil {
		slog.Error("failed to read session", "error", err)
	} else if session != nil && session.Token != "" {
		mode = state.NormalMode
		m.Email = session.Email
	}
	m.UiState = state.NewUIState(mode)

	if eventClient := a.EventClient(); eventClient != nil {
		eventChan, err := eventClient.Listen(ctx)
		if err != nil {
			slog.Warn("failed to listen for live updates", "error", err)
		} else {
			m.EventChan = eventChan
			m.ConnectionState.SetStatus(state.Connected)
		}
	}

	return m
}

// RequestContext returns a context for one API call, derived from the
// program context so quitting cancels requests in flight
func (m *Model) RequestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(m.Ctx, requestTimeout)
}

// IsAuthenticated reports whether the UI is past the auth screen
func (m *Model) IsAuthenticated() bool {
	return m.UiState.Mode() != state.AuthMode
}

// Close unsubscribes from tag invalidations
func (m *Model) Close() {
	if m.stopTags != nil {
		m.stopTags()
		m.stopTags = nil
	}
}

package core

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/taskdesk/internal/app"
	"github.com/thenoetrevino/taskdesk/internal/tui"
	"github.com/thenoetrevino/taskdesk/internal/tui/handlers"
	"github.com/thenoetrevino/taskdesk/internal/tui/render"
)

// App wraps the TUI Model and implements the tea.Model interface.
// This is the single entry point for the Bubble Tea application.
type App struct {
	model *tui.Model
}

// New creates a new App with an initialized Model.
func New(ctx context.Context, a *app.App) *App {
	return &App{model: tui.New(ctx, a)}
}

// Init initializes the Bubble Tea application.
func (a *App) Init() tea.Cmd {
	return handlers.Init(a.model)
}

// Update handles all messages. The model is mutated in place.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return a, handlers.Update(a.model, msg)
}

// View renders the current state of the application.
func (a *App) View() tea.View {
	return render.View(a.model)
}

// GetModel returns the underlying Model.
// This is primarily useful for testing purposes.
func (a *App) GetModel() *tui.Model {
	return a.model
}

// Close releases the model's subscriptions
func (a *App) Close() {
	a.model.Close()
}

package render

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/taskdesk/internal/models"
	clitest "github.com/thenoetrevino/taskdesk/internal/testutil/cli"
	"github.com/thenoetrevino/taskdesk/internal/tui"
	"github.com/thenoetrevino/taskdesk/internal/tui/handlers"
	"github.com/thenoetrevino/taskdesk/internal/tui/state"
)

func newRenderModel(t *testing.T, loggedIn bool) *tui.Model {
	t.Helper()
	srv, a := clitest.SetupCLITest(t)
	if loggedIn {
		clitest.LoginAs(t, srv, a, "user@example.com")
	}

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	m := tui.New(ctx, a)
	t.Cleanup(m.Close)
	handlers.HandleWindowResize(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	return m
}

func withTasks(m *tui.Model) {
	m.ListState.SetPage(models.TaskPage{
		Tasks: []models.Task{
			{ID: 2, Title: "Write report", Description: "Quarterly", Status: models.StatusInProgress,
				Deadline: time.Date(2030, 1, 15, 0, 0, 0, 0, time.Local)},
			{ID: 1, Title: "Buy milk", Description: "Two litres", Status: models.StatusNew},
		},
		Total: 2,
	})
}

func renderLayer(l *lipgloss.Layer) string {
	return lipgloss.NewCanvas(l).Render()
}

func TestViewTaskList_ShowsTasksAndPagination(t *testing.T) {
	m := newRenderModel(t, true)
	withTasks(m)

	out := ViewTaskList(m)

	for _, want := range []string{"Write report", "Buy milk", "In progress", "2030-01-15", "Page 1 of 1 · 2 tasks · 10 per page", "user@example.com"} {
		assert.Contains(t, out, want)
	}
}

func TestViewTaskList_EmptyStates(t *testing.T) {
	m := newRenderModel(t, true)
	assert.Contains(t, ViewTaskList(m), "Loading tasks...")

	m.ListState.SetPage(models.TaskPage{})
	assert.Contains(t, ViewTaskList(m), "No tasks found")
}

func TestViewTaskList_ShowsActiveFilters(t *testing.T) {
	m := newRenderModel(t, true)
	m.ListState.SetQuery(m.ListState.Query().
		WithSearch("milk").
		WithFilters(models.TaskFilters{Status: models.StatusCompleted}))
	m.ListState.SetPage(models.TaskPage{})

	out := ViewTaskList(m)
	assert.Contains(t, out, `search "milk"`)
	assert.Contains(t, out, "status Completed")
}

func TestRenderAuthLayer(t *testing.T) {
	m := newRenderModel(t, false)
	handlers.Init(m)

	require.Equal(t, state.AuthMode, m.UiState.Mode())
	layer := RenderAuthLayer(m)
	require.NotNil(t, layer)
	out := renderLayer(layer)
	assert.Contains(t, out, "Login")
	assert.Contains(t, out, "switch to Register")
}

func TestModalLayers(t *testing.T) {
	m := newRenderModel(t, true)
	withTasks(m)

	handlers.OpenTaskForm(m, nil)
	assert.Contains(t, renderLayer(RenderTaskFormLayer(m)), "New Task")

	handlers.OpenTaskForm(m, m.ListState.SelectedTask())
	assert.Contains(t, renderLayer(RenderTaskFormLayer(m)), "Edit Task #2")

	handlers.OpenFilterForm(m)
	assert.Contains(t, renderLayer(RenderFilterFormLayer(m)), "Filter Tasks")

	m.StatusPickerState.Open(m.ListState.SelectedTask())
	assert.Contains(t, renderLayer(RenderStatusPickerLayer(m)), "(current)")

	m.PageSizePickerState.Open(10)
	assert.Contains(t, renderLayer(RenderPageSizePickerLayer(m)), "30 per page")

	m.DeleteConfirmState.Open(m.ListState.SelectedTask())
	assert.Contains(t, renderLayer(RenderDeleteConfirmLayer(m)), "Delete 'Write report'?")
	assert.Contains(t, renderLayer(RenderLogoutConfirmLayer(m)), "Log out user@example.com?")
	assert.Contains(t, renderLayer(RenderHelpLayer(m)), "Keyboard Shortcuts")
}

func TestRenderDeleteConfirm_NoTarget(t *testing.T) {
	m := newRenderModel(t, true)
	withTasks(m)
	assert.Nil(t, RenderDeleteConfirmLayer(m), "a selection alone does not open the dialog")
}

func TestRenderDeleteConfirm_UsesTitleFromOpen(t *testing.T) {
	m := newRenderModel(t, true)
	withTasks(m)
	m.DeleteConfirmState.Open(m.ListState.SelectedTask())

	m.ListState.MoveDown()
	assert.Contains(t, renderLayer(RenderDeleteConfirmLayer(m)), "Delete 'Write report'?")
}

func TestView_BeforeResize(t *testing.T) {
	m := newRenderModel(t, true)
	m.UiState.SetWidth(0)

	view := View(m)
	assert.True(t, view.AltScreen)
}

func TestView_EveryMode(t *testing.T) {
	m := newRenderModel(t, true)
	withTasks(m)
	m.NotificationState.Add(state.LevelSuccess, "Task created successfully")

	modes := []state.Mode{
		state.NormalMode, state.SearchMode, state.TaskFormMode, state.FilterFormMode,
		state.StatusPickerMode, state.PageSizePickerMode, state.DeleteConfirmMode,
		state.LogoutConfirmMode, state.DetailMode, state.HelpMode, state.AuthMode,
	}
	for _, mode := range modes {
		m.UiState.SetMode(mode)
		assert.NotPanics(t, func() { View(m) }, "mode %d", mode)
	}
}

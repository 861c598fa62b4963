package handlers

import (
	"context"
	"sync"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/taskdesk/internal/models"
	"github.com/thenoetrevino/taskdesk/internal/testutil"
	clitest "github.com/thenoetrevino/taskdesk/internal/testutil/cli"
	"github.com/thenoetrevino/taskdesk/internal/tui"
	"github.com/thenoetrevino/taskdesk/internal/tui/modelops"
)

const testEmail = "user@example.com"

// cmdTimeout bounds how long run waits for a command. Ticks longer than this
// (toast expiry) and blocking listeners are dropped.
const cmdTimeout = time.Second

// setupModel builds a sized model against a fresh dev API server, logged in
// when loggedIn is set. Init is not called, so no listener goroutines run.
func setupModel(t *testing.T, loggedIn bool) (*tui.Model, *testutil.APIServer) {
	t.Helper()

	srv, a := clitest.SetupCLITest(t)
	if loggedIn {
		clitest.LoginAs(t, srv, a, testEmail)
	}

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	m := tui.New(ctx, a)
	t.Cleanup(m.Close)
	HandleWindowResize(m, tea.WindowSizeMsg{Width: 120, Height: 40})

	srv.ResetRequests()
	return m, srv
}

// run executes cmd, following batches, and returns every message produced
// within cmdTimeout.
func run(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}

	var (
		mu   sync.Mutex
		msgs []tea.Msg
		wg   sync.WaitGroup
	)
	ctx, cancel := context.WithTimeout(context.Background(), cmdTimeout)
	defer cancel()

	var exec func(tea.Cmd)
	exec = func(c tea.Cmd) {
		if c == nil {
			return
		}
		out := make(chan tea.Msg, 1)
		go func() { out <- c() }()

		select {
		case msg := <-out:
			if batch, ok := msg.(tea.BatchMsg); ok {
				for _, sub := range batch {
					wg.Add(1)
					go func(sub tea.Cmd) {
						defer wg.Done()
						exec(sub)
					}(sub)
				}
				return
			}
			if msg != nil {
				mu.Lock()
				msgs = append(msgs, msg)
				mu.Unlock()
			}
		case <-ctx.Done():
		}
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		exec(cmd)
	}()
	wg.Wait()
	return msgs
}

// find returns the first message of type T
func find[T any](msgs []tea.Msg) (T, bool) {
	for _, msg := range msgs {
		if typed, ok := msg.(T); ok {
			return typed, true
		}
	}
	var zero T
	return zero, false
}

// mustFind is find that fails the test when no T was produced
func mustFind[T any](t *testing.T, msgs []tea.Msg) T {
	t.Helper()
	msg, ok := find[T](msgs)
	require.True(t, ok, "expected a %T among %#v", msg, msgs)
	return msg
}

// loadTasks fetches the current page and applies the result
func loadTasks(t *testing.T, m *tui.Model) {
	t.Helper()
	loaded := mustFind[tui.TasksLoadedMsg](t, run(t, modelops.FetchTasks(m)))
	require.NoError(t, loaded.Err)
	Update(m, loaded)
}

// seedTask creates a task through the service and reloads the list
func seedTask(t *testing.T, m *tui.Model, title string, status models.Status) *models.Task {
	t.Helper()
	task, err := m.App.TaskService.Create(context.Background(), models.TaskInput{
		Title:       title,
		Description: "description of " + title,
		Status:      status,
		Deadline:    time.Date(2030, 1, 15, 0, 0, 0, 0, time.Local),
	})
	require.NoError(t, err)

	// Drop the invalidation the create queued so tests start clean
	select {
	case <-m.Invalidations:
	default:
	}
	loadTasks(t, m)
	return task
}

// key builds a key press for a printable key
func key(s string) tea.KeyPressMsg {
	r := []rune(s)[0]
	return tea.KeyPressMsg{Code: r, Text: s}
}

// ctrlKey builds ctrl+r
func ctrlKey(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl}
}

var (
	enterKey = tea.KeyPressMsg{Code: tea.KeyEnter}
	escKey   = tea.KeyPressMsg{Code: tea.KeyEscape}
)

// lastToast returns the newest notification message, or ""
func lastToast(m *tui.Model) string {
	if n := m.NotificationState.Last(); n != nil {
		return n.Message
	}
	return ""
}

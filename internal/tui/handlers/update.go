package handlers

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/taskdesk/internal/tui"
	"github.com/thenoetrevino/taskdesk/internal/tui/modelops"
	"github.com/thenoetrevino/taskdesk/internal/tui/state"
)

// Init starts the background listeners and either loads the first page or
// opens the auth form.
func Init(m *tui.Model) tea.Cmd {
	cmds := []tea.Cmd{
		modelops.ListenForInvalidations(m),
		modelops.SubscribeToEvents(m),
	}
	if m.IsAuthenticated() {
		cmds = append(cmds, modelops.FetchTasks(m))
	} else {
		cmds = append(cmds, openAuthForm(m))
	}
	return tea.Batch(cmds...)
}

// Update is the main update dispatcher that handles all messages and updates the model.
// This implements the "Update" part of the Model-View-Update pattern.
func Update(m *tui.Model, msg tea.Msg) tea.Cmd {
	select {
	case <-m.Ctx.Done():
		return tea.Quit
	default:
	}

	// Results and background events apply whatever the current mode is
	switch msg := msg.(type) {
	case tui.TasksLoadedMsg:
		return handleTasksLoaded(m, msg)
	case tui.TaskSavedMsg:
		return handleTaskSaved(m, msg)
	case tui.TaskDeletedMsg:
		return handleTaskDeleted(m, msg)
	case tui.StatusUpdatedMsg:
		return handleStatusUpdated(m, msg)
	case tui.AuthResultMsg:
		return handleAuthResult(m, msg)
	case tui.LoggedOutMsg:
		return handleLoggedOut(m, msg)
	case tui.SessionReloadedMsg:
		return handleSessionReloaded(m, msg)
	case tui.TagsInvalidatedMsg:
		return handleTagsInvalidated(m, msg)
	case tui.RemoteEventMsg:
		return handleRemoteEvent(m, msg)
	case tui.EventStreamClosedMsg:
		m.ConnectionState.SetStatus(state.Disconnected)
		return modelops.Notify(m, state.LevelWarning, "Live updates stopped: lost connection to the daemon")
	case tui.NotificationExpiredMsg:
		m.NotificationState.Remove(msg.ID)
		return nil
	case tui.SearchDebounceMsg:
		return handleSearchDebounce(m, msg)
	case tea.WindowSizeMsg:
		return HandleWindowResize(m, msg)
	}

	// Form modes and the search bar need every message, not only keys
	switch m.UiState.Mode() {
	case state.AuthMode:
		return HandleAuthMode(m, msg)
	case state.TaskFormMode:
		return HandleTaskFormMode(m, msg)
	case state.FilterFormMode:
		return HandleFilterFormMode(m, msg)
	case state.SearchMode:
		return HandleSearchMode(m, msg)
	}

	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		return HandleKeyMsg(m, keyMsg)
	}
	return nil
}

// HandleKeyMsg dispatches key presses to the handler of the current mode.
func HandleKeyMsg(m *tui.Model, msg tea.KeyPressMsg) tea.Cmd {
	switch m.UiState.Mode() {
	case state.NormalMode:
		return HandleNormalMode(m, msg)
	case state.StatusPickerMode:
		return HandleStatusPickerMode(m, msg)
	case state.PageSizePickerMode:
		return HandlePageSizePickerMode(m, msg)
	case state.DeleteConfirmMode:
		return HandleDeleteConfirm(m, msg)
	case state.LogoutConfirmMode:
		return HandleLogoutConfirm(m, msg)
	case state.DetailMode:
		return HandleDetailMode(m, msg)
	case state.HelpMode:
		return HandleHelpMode(m, msg)
	}
	return nil
}

// HandleWindowResize handles terminal resize events.
func HandleWindowResize(m *tui.Model, msg tea.WindowSizeMsg) tea.Cmd {
	m.UiState.SetWidth(msg.Width)
	m.UiState.SetHeight(msg.Height)
	m.NotificationState.SetWindowSize(msg.Width, msg.Height)
	m.SearchState.Input.SetWidth(max(msg.Width-6, 10))

	if task := m.DetailState.Task(); task != nil && m.UiState.Mode() == state.DetailMode {
		openDetail(m, *task)
	}
	return nil
}

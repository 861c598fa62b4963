package handlers

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/taskdesk/internal/tui"
	"github.com/thenoetrevino/taskdesk/internal/tui/modelops"
	"github.com/thenoetrevino/taskdesk/internal/tui/state"
)

// ============================================================================
// SEARCH MODE HANDLERS
// ============================================================================

// HandleEnterSearch focuses the search bar, keeping any previous text.
func HandleEnterSearch(m *tui.Model) tea.Cmd {
	m.UiState.SetMode(state.SearchMode)
	return m.SearchState.Input.Focus()
}

// HandleSearchMode handles every message while the search bar has focus.
// The search is sent once typing pauses, or immediately on enter.
func HandleSearchMode(m *tui.Model, msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "enter":
			m.SearchState.Input.Blur()
			m.UiState.SetMode(state.NormalMode)
			m.SearchState.Touch()
			return applySearch(m)
		case "esc":
			return clearSearch(m)
		case "ctrl+c":
			return tea.Quit
		}
	}

	before := m.SearchState.Value()
	var cmd tea.Cmd
	m.SearchState.Input, cmd = m.SearchState.Input.Update(msg)
	if m.SearchState.Value() == before {
		return cmd
	}

	seq := m.SearchState.Touch()
	return tea.Batch(cmd, modelops.DebounceSearch(seq))
}

// handleSearchDebounce sends the search if no newer edit happened since seq
func handleSearchDebounce(m *tui.Model, msg tui.SearchDebounceMsg) tea.Cmd {
	if !m.SearchState.IsLatest(msg.Seq) || !m.IsAuthenticated() {
		return nil
	}
	return applySearch(m)
}

// applySearch moves the search text into the query, back on page 1
func applySearch(m *tui.Model) tea.Cmd {
	text := strings.TrimSpace(m.SearchState.Value())
	query := m.ListState.Query()
	if text == query.Search {
		return nil
	}
	m.ListState.SetQuery(query.WithSearch(text))
	return modelops.FetchTasks(m)
}

// clearSearch empties the search bar, returns to normal mode and reloads
func clearSearch(m *tui.Model) tea.Cmd {
	m.SearchState.Clear()
	m.SearchState.Input.Blur()
	m.UiState.SetMode(state.NormalMode)
	return applySearch(m)
}

package handlers

import (
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"github.com/thenoetrevino/taskdesk/internal/tui"
	"github.com/thenoetrevino/taskdesk/internal/tui/huhforms"
	"github.com/thenoetrevino/taskdesk/internal/tui/modelops"
	"github.com/thenoetrevino/taskdesk/internal/tui/state"
	"github.com/thenoetrevino/taskdesk/internal/validation"
)

// ToggleAuthModeKey switches the auth screen between login and register
const ToggleAuthModeKey = "ctrl+t"

// ============================================================================
// AUTH SCREEN HANDLERS
// ============================================================================

// openAuthForm builds a fresh auth form bound to the current credentials
func openAuthForm(m *tui.Model) tea.Cmd {
	m.FormState.AuthForm = huhforms.CreateAuthForm(&m.FormState.AuthEmail, &m.FormState.AuthPassword).
		WithTheme(huhforms.CreateTheme(m.Config.ColorScheme, m.Config.ColorScheme.Accent))
	return m.FormState.AuthForm.Init()
}

// HandleAuthMode handles every message while the auth screen is shown.
func HandleAuthMode(m *tui.Model, msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c":
			return tea.Quit
		case ToggleAuthModeKey:
			if m.FormState.AuthPending {
				return nil
			}
			m.FormState.ToggleAuthMode()
			return openAuthForm(m)
		}
	}

	// Ignore input while a request is in flight
	if m.FormState.AuthPending || m.FormState.AuthForm == nil {
		return nil
	}

	model, cmd := m.FormState.AuthForm.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		m.FormState.AuthForm = f
	}

	if m.FormState.AuthForm.State == huh.StateCompleted {
		return SubmitAuth(m)
	}
	return cmd
}

// SubmitAuth validates the credentials and, only if they pass, sends the
// login or register request for the current auth mode.
func SubmitAuth(m *tui.Model) tea.Cmd {
	creds := m.FormState.Credentials()
	creds.Email = strings.TrimSpace(creds.Email)

	if err := validation.Credentials(creds); err != nil {
		return tea.Batch(
			modelops.Notify(m, state.LevelError, firstValidationMessage(err)),
			openAuthForm(m),
		)
	}

	m.FormState.AuthPending = true
	return modelops.Authenticate(m, m.FormState.AuthMode, creds)
}

// firstValidationMessage returns the message of the first failing field
func firstValidationMessage(err error) string {
	var errs *validation.Errors
	if errors.As(err, &errs) && errs.First() != nil {
		return errs.First().Message
	}
	return err.Error()
}

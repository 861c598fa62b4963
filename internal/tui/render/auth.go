package render

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/taskdesk/internal/tui"
	"github.com/thenoetrevino/taskdesk/internal/tui/components"
	"github.com/thenoetrevino/taskdesk/internal/tui/layers"
	"github.com/thenoetrevino/taskdesk/internal/tui/state"
)

// RenderAuthLayer renders the login/register form centered on screen
func RenderAuthLayer(m *tui.Model) *lipgloss.Layer {
	fs := m.FormState
	if fs.AuthForm == nil {
		return nil
	}

	other := state.RegisterForm
	if fs.AuthMode == state.RegisterForm {
		other = state.LoginForm
	}

	body := fs.AuthForm.View()
	if fs.AuthPending {
		body = components.SubtleStyle.Render("Signing in...")
		if fs.AuthMode == state.RegisterForm {
			body = components.SubtleStyle.Render("Creating account...")
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		components.TitleStyle.Render(fs.AuthMode.String()),
		components.SubtleStyle.Render(m.Config.APIURL),
		"",
		body,
		"",
		components.SubtleStyle.Render("ctrl+t: switch to "+other.String()+"  ctrl+c: quit"),
	)

	box := components.AuthBoxStyle.Width(layers.ModalWidth(m.UiState.Width(), 1, 2, layers.AuthFormWidth, layers.AuthFormWidth)).Render(content)
	return layers.CreateCenteredLayer(box, m.UiState.Width(), m.UiState.Height())
}

package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/taskdesk/internal/testutil"
	"github.com/thenoetrevino/taskdesk/internal/tui"
	"github.com/thenoetrevino/taskdesk/internal/tui/state"
)

func TestNew_StartsOnAuthScreenWithoutToken(t *testing.T) {
	m, _ := setupModel(t, false)
	assert.Equal(t, state.AuthMode, m.UiState.Mode())
	assert.False(t, m.IsAuthenticated())
}

func TestNew_StartsOnTaskListWithToken(t *testing.T) {
	m, _ := setupModel(t, true)
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.Equal(t, testEmail, m.Email)
}

func TestSubmitAuth_InvalidCredentialsSendNothing(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		want     string
	}{
		{"empty email", "", "secret1", "email is required"},
		{"malformed email", "not-an-email", "secret1", `"not-an-email" is not a valid email address`},
		{"short password", "user@example.com", "123", "password must be at least 6 characters"},
		{"empty password", "user@example.com", "", "password is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, srv := setupModel(t, false)
			m.FormState.AuthEmail = tt.email
			m.FormState.AuthPassword = tt.password

			run(t, SubmitAuth(m))

			assert.Zero(t, srv.RequestCount(), "no request may be sent for invalid credentials")
			assert.Equal(t, tt.want, lastToast(m))
			assert.False(t, m.FormState.AuthPending)
			assert.Equal(t, state.AuthMode, m.UiState.Mode())
			assert.NotNil(t, m.FormState.AuthForm, "form reopens for correction")
		})
	}
}

func TestSubmitAuth_LoginEntersTaskList(t *testing.T) {
	m, srv := setupModel(t, false)
	srv.RegisterUser(t, testEmail)
	srv.ResetRequests()

	m.FormState.AuthEmail = "  " + testEmail + " "
	m.FormState.AuthPassword = testutil.TestPassword

	result := mustFind[tui.AuthResultMsg](t, run(t, SubmitAuth(m)))
	require.NoError(t, result.Err)
	assert.Equal(t, []string{"POST /api/auth/login"}, srv.Requests())

	loaded := mustFind[tui.TasksLoadedMsg](t, run(t, Update(m, result)))
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.Equal(t, testEmail, m.Email)

	require.NoError(t, loaded.Err)
	Update(m, loaded)
	assert.True(t, m.ListState.Loaded())

	session, err := m.App.Session.Current(context.Background())
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.NotEmpty(t, session.Token, "token is persisted for the API URL")
}

func TestSubmitAuth_LoginFailureStaysOnAuthScreen(t *testing.T) {
	m, srv := setupModel(t, false)
	srv.RegisterUser(t, testEmail)

	m.FormState.AuthEmail = testEmail
	m.FormState.AuthPassword = "wrong-password"

	result := mustFind[tui.AuthResultMsg](t, run(t, SubmitAuth(m)))
	require.Error(t, result.Err)

	run(t, Update(m, result))
	assert.Equal(t, state.AuthMode, m.UiState.Mode())
	assert.Contains(t, lastToast(m), "Login failed")
	assert.Empty(t, m.FormState.AuthPassword, "password is cleared after a failure")
	assert.Equal(t, testEmail, m.FormState.AuthEmail)
}

func TestSubmitAuth_RegisterReturnsToLogin(t *testing.T) {
	m, srv := setupModel(t, false)
	m.FormState.ToggleAuthMode()
	require.Equal(t, state.RegisterForm, m.FormState.AuthMode)

	m.FormState.AuthEmail = "new@example.com"
	m.FormState.AuthPassword = "secret1"

	result := mustFind[tui.AuthResultMsg](t, run(t, SubmitAuth(m)))
	require.NoError(t, result.Err)
	assert.Equal(t, []string{"POST /api/auth/register"}, srv.Requests())

	run(t, Update(m, result))
	assert.Equal(t, state.AuthMode, m.UiState.Mode(), "registration does not log in")
	assert.Equal(t, state.LoginForm, m.FormState.AuthMode)
	assert.Equal(t, "Registration successful! Please log in", lastToast(m))
}

func TestHandleAuthMode_ToggleKeepsEmail(t *testing.T) {
	m, _ := setupModel(t, false)
	m.FormState.AuthEmail = testEmail
	m.FormState.AuthPassword = "secret1"

	HandleAuthMode(m, ctrlKey('t'))

	assert.Equal(t, state.RegisterForm, m.FormState.AuthMode)
	assert.Equal(t, testEmail, m.FormState.AuthEmail)
	assert.Empty(t, m.FormState.AuthPassword)
}

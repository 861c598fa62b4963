// Package cli provides helpers for running cobra commands against a test App.
// It is separate from testutil so that service tests can import testutil
// without pulling in the app package.
package cli

import (
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskdesk/internal/app"
	"github.com/thenoetrevino/taskdesk/internal/config"
	"github.com/thenoetrevino/taskdesk/internal/testutil"
)

// SetupCLITest starts a dev API server and returns it with an App pointed at it.
// The App has no event publisher.
func SetupCLITest(t *testing.T) (*testutil.APIServer, *app.App) {
	t.Helper()

	srv := testutil.StartAPIServer(t)
	cfg := config.Default()
	cfg.APIURL = srv.URL

	appInstance, err := app.New(cfg, testutil.SetupTestDB(t))
	if err != nil {
		t.Fatalf("Failed to create app: %v", err)
	}
	t.Cleanup(func() { _ = appInstance.Close() })

	return srv, appInstance
}

// LoginAs registers email on srv and stores its token in testApp's session
func LoginAs(t *testing.T, srv *testutil.APIServer, testApp *app.App, email string) {
	t.Helper()

	token := srv.RegisterUser(t, email)
	if err := testApp.Session.Save(context.Background(), token, email); err != nil {
		t.Fatalf("Failed to save session: %v", err)
	}
}

// ExecuteCLICommand executes a CLI command with a test app instance and
// returns what it printed to stdout
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	ctx := app.NewContext(context.Background(), testApp)
	testutil.SetupCobraCommand(cmd, args)

	var executeErr error
	output := testutil.CaptureOutput(t, func() {
		executeErr = cmd.ExecuteContext(ctx)
	})
	return output, executeErr
}

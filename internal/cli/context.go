package cli

import (
	"context"

	"github.com/thenoetrevino/taskdesk/internal/app"
)

type apiURLKey struct{}

// WithAPIURL returns ctx carrying an API URL override for GetCLIFromContext
func WithAPIURL(ctx context.Context, apiURL string) context.Context {
	return context.WithValue(ctx, apiURLKey{}, apiURL)
}

// GetCLIFromContext returns a CLI for the command being run. An App injected
// with app.NewContext is used as is and is not closed by CLI.Close.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	if injected, ok := app.FromContext(ctx); ok {
		return &CLI{App: injected}, nil
	}

	apiURL, _ := ctx.Value(apiURLKey{}).(string)
	return NewCLI(ctx, apiURL)
}

package api

import (
	"context"

	"github.com/thenoetrevino/taskdesk/internal/models"
)

const authPrefix = "/api/auth"

type loginResponse struct {
	Token string `json:"token"`
}

// Register creates an account. It does not log in.
func (c *Client) Register(ctx context.Context, creds models.Credentials) error {
	return c.do(ctx, registerEndpoint, authPrefix+"/register", "", creds, nil)
}

// Login exchanges credentials for a bearer token
func (c *Client) Login(ctx context.Context, creds models.Credentials) (string, error) {
	var resp loginResponse
	if err := c.do(ctx, loginEndpoint, authPrefix+"/login", "", creds, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", ErrMissingToken
	}
	return resp.Token, nil
}

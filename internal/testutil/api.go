package testutil

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/thenoetrevino/taskdesk/internal/api"
	"github.com/thenoetrevino/taskdesk/internal/models"
	"github.com/thenoetrevino/taskdesk/internal/server"
)

// TestPassword is the password RegisterUser uses
const TestPassword = "secret1"

// APIServer is a development task API backed by an in-memory database.
// It records the method, path and query of every request it serves.
type APIServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []string
	queries  []string
}

// StartAPIServer starts an APIServer that is closed when the test ends
func StartAPIServer(t *testing.T) *APIServer {
	t.Helper()

	srv, closeDB, err := server.NewFromConfig(context.Background(), server.Config{
		DBPath: ":memory:",
		Secret: "test-secret",
	})
	if err != nil {
		t.Fatalf("Failed to create API server: %v", err)
	}

	s := &APIServer{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests = append(s.requests, r.Method+" "+r.URL.Path)
		s.queries = append(s.queries, r.URL.RawQuery)
		s.mu.Unlock()
		srv.ServeHTTP(w, r)
	}))

	t.Cleanup(func() {
		s.Close()
		_ = closeDB()
	})
	return s
}

// Requests returns "METHOD /path" for every request served so far
func (s *APIServer) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requests...)
}

// LastQuery returns the raw query string of the most recent request
func (s *APIServer) LastQuery() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.queries) == 0 {
		return ""
	}
	return s.queries[len(s.queries)-1]
}

// RequestCount returns the number of requests served so far
func (s *APIServer) RequestCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

// ResetRequests forgets recorded requests
func (s *APIServer) ResetRequests() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = nil
	s.queries = nil
}

// RegisterUser registers email with TestPassword and returns a login token
func (s *APIServer) RegisterUser(t *testing.T, email string) string {
	t.Helper()
	ctx := context.Background()
	creds := models.Credentials{Email: email, Password: TestPassword}

	client, err := api.New(s.URL)
	if err != nil {
		t.Fatalf("Failed to create API client: %v", err)
	}
	if err := client.Register(ctx, creds); err != nil {
		t.Fatalf("Failed to register %s: %v", email, err)
	}
	token, err := client.Login(ctx, creds)
	if err != nil {
		t.Fatalf("Failed to log in %s: %v", email, err)
	}
	return token
}

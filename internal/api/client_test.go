package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/taskdesk/internal/models"
)

// recorded is one request seen by the stub server
type recorded struct {
	Method   string
	Path     string
	RawQuery string
	Auth     string
	Body     string
}

// stubServer answers every request with the configured status and body and records it
type stubServer struct {
	mu       sync.Mutex
	requests []recorded
	status   int
	body     string
}

func newStub(t *testing.T, status int, body string) (*stubServer, *httptest.Server) {
	t.Helper()
	stub := &stubServer{status: status, body: body}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload, _ := io.ReadAll(r.Body)
		stub.mu.Lock()
		stub.requests = append(stub.requests, recorded{
			Method:   r.Method,
			Path:     r.URL.Path,
			RawQuery: r.URL.RawQuery,
			Auth:     r.Header.Get("Authorization"),
			Body:     string(payload),
		})
		stub.mu.Unlock()
		assert.NotEmpty(t, r.Header.Get(RequestIDHeader))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(stub.status)
		_, _ = io.WriteString(w, stub.body)
	}))
	t.Cleanup(srv.Close)
	return stub, srv
}

func (s *stubServer) last(t *testing.T) recorded {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	require.NotEmpty(t, s.requests)
	return s.requests[len(s.requests)-1]
}

func (s *stubServer) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

func newTestClient(t *testing.T, baseURL string, token string) *Client {
	t.Helper()
	c, err := New(baseURL+"/", WithTokenSource(StaticToken(token)))
	require.NoError(t, err)
	return c
}

// ============================================================================
// Construction
// ============================================================================

func TestNew_RejectsBadBaseURL(t *testing.T) {
	for _, raw := range []string{"", "localhost:8080", "ftp://x", "http://"} {
		_, err := New(raw)
		assert.ErrorIs(t, err, ErrInvalidBaseURL, raw)
	}
}

func TestNew_TrimsTrailingSlash(t *testing.T) {
	c, err := New("http://example.com/")
	require.NoError(t, err)
	assert.Equal(t, "http://example.com", c.BaseURL())
}

// ============================================================================
// Query encoding
// ============================================================================

func TestEncodeTaskQuery_AlwaysIncludesEmptyFilters(t *testing.T) {
	got := EncodeTaskQuery(models.TaskQuery{Page: 1, Limit: 10})
	assert.Equal(t, "search=&page=1&limit=10&status=&deadline=", got)
}

func TestEncodeTaskQuery_AllParams(t *testing.T) {
	q := models.TaskQuery{
		Search:   "buy milk&eggs",
		Page:     3,
		Limit:    20,
		Status:   models.StatusCompleted,
		Deadline: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
	}
	got := EncodeTaskQuery(q)
	assert.Equal(t,
		"search=buy+milk%26eggs&page=3&limit=20&status=completed&deadline=2026-04-01T00%3A00%3A00.000Z",
		got)
}

// ============================================================================
// Auth endpoints
// ============================================================================

func TestLogin(t *testing.T) {
	stub, srv := newStub(t, http.StatusOK, `{"token":"abc.def.ghi"}`)
	c := newTestClient(t, srv.URL, "")

	token, err := c.Login(context.Background(), models.Credentials{Email: "a@b.io", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	req := stub.last(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/api/auth/login", req.Path)
	assert.JSONEq(t, `{"email":"a@b.io","password":"secret"}`, req.Body)
	assert.Empty(t, req.Auth, "auth endpoints never carry the bearer token")
}

func TestLogin_MissingToken(t *testing.T) {
	_, srv := newStub(t, http.StatusOK, `{}`)
	c := newTestClient(t, srv.URL, "")

	_, err := c.Login(context.Background(), models.Credentials{Email: "a@b.io", Password: "secret"})
	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestRegister_Conflict(t *testing.T) {
	stub, srv := newStub(t, http.StatusConflict, `{"error":"email already registered"}`)
	c := newTestClient(t, srv.URL, "")

	err := c.Register(context.Background(), models.Credentials{Email: "a@b.io", Password: "secret"})
	require.Error(t, err)
	assert.True(t, IsConflict(err))
	assert.Equal(t, "email already registered", Message(err))
	assert.Equal(t, "/api/auth/register", stub.last(t).Path)
}

// ============================================================================
// Task endpoints
// ============================================================================

func TestListTasks(t *testing.T) {
	stub, srv := newStub(t, http.StatusOK,
		`{"tasks":[{"id":1,"title":"t","description":"d","status":"new","deadline":"2026-01-02T00:00:00.000Z"}],"total":11}`)
	c := newTestClient(t, srv.URL, "tok")

	page, err := c.ListTasks(context.Background(), models.TaskQuery{Page: 2, Limit: 10, Status: models.StatusNew})
	require.NoError(t, err)
	require.Len(t, page.Tasks, 1)
	assert.Equal(t, 11, page.Total)
	assert.Equal(t, models.StatusNew, page.Tasks[0].Status)
	assert.Equal(t, 2026, page.Tasks[0].Deadline.Year())

	req := stub.last(t)
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/api/tasks", req.Path)
	assert.Equal(t, "search=&page=2&limit=10&status=new&deadline=", req.RawQuery)
	assert.Equal(t, "Bearer tok", req.Auth)
}

func TestListTasks_NoTokenNoHeader(t *testing.T) {
	stub, srv := newStub(t, http.StatusUnauthorized, `{"error":"authorization header required"}`)
	c := newTestClient(t, srv.URL, "")

	_, err := c.ListTasks(context.Background(), models.DefaultTaskQuery(10))
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
	assert.Empty(t, stub.last(t).Auth)
}

func TestListTasks_NullTasksBecomesEmpty(t *testing.T) {
	_, srv := newStub(t, http.StatusOK, `{"tasks":null,"total":0}`)
	c := newTestClient(t, srv.URL, "tok")

	page, err := c.ListTasks(context.Background(), models.DefaultTaskQuery(10))
	require.NoError(t, err)
	assert.NotNil(t, page.Tasks)
	assert.Empty(t, page.Tasks)
}

func TestCreateTask_SendsISODeadline(t *testing.T) {
	stub, srv := newStub(t, http.StatusCreated,
		`{"id":5,"title":"t","description":"d","status":"new","deadline":"2026-02-03T00:00:00.000Z"}`)
	c := newTestClient(t, srv.URL, "tok")

	in := models.TaskInput{
		Title:       "t",
		Description: "d",
		Status:      models.StatusNew,
		Deadline:    time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC),
	}
	task, err := c.CreateTask(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 5, task.ID)

	req := stub.last(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/api/tasks", req.Path)
	assert.JSONEq(t,
		`{"title":"t","description":"d","status":"new","deadline":"2026-02-03T00:00:00.000Z"}`,
		req.Body)
}

func TestUpdateDeleteAndStatus_Paths(t *testing.T) {
	stub, srv := newStub(t, http.StatusOK, `{}`)
	c := newTestClient(t, srv.URL, "tok")
	ctx := context.Background()

	_, err := c.UpdateTask(ctx, 9, models.TaskInput{Title: "x", Description: "y", Status: models.StatusCompleted, Deadline: time.Now()})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, stub.last(t).Method)
	assert.Equal(t, "/api/tasks/9", stub.last(t).Path)

	require.NoError(t, c.UpdateTaskStatus(ctx, 9, models.StatusInProgress))
	req := stub.last(t)
	assert.Equal(t, http.MethodPatch, req.Method)
	assert.Equal(t, "/api/tasks/9/updateStatus", req.Path)
	assert.JSONEq(t, `{"status":"in_progress"}`, req.Body)

	require.NoError(t, c.DeleteTask(ctx, 9))
	assert.Equal(t, http.MethodDelete, stub.last(t).Method)
	assert.Equal(t, "/api/tasks/9", stub.last(t).Path)
	assert.Equal(t, 3, stub.count())
}

// ============================================================================
// Tags
// ============================================================================

func TestMutationsInvalidateTaskTag(t *testing.T) {
	_, srv := newStub(t, http.StatusOK, `{"tasks":[],"total":0}`)
	c := newTestClient(t, srv.URL, "tok")
	ctx := context.Background()

	var got [][]Tag
	unsubscribe := c.Tags().Subscribe(func(tags []Tag) {
		got = append(got, tags)
	})

	_, err := c.ListTasks(ctx, models.DefaultTaskQuery(10))
	require.NoError(t, err)
	assert.Empty(t, got, "queries provide tags, they do not invalidate")

	require.NoError(t, c.DeleteTask(ctx, 1))
	require.NoError(t, c.UpdateTaskStatus(ctx, 1, models.StatusNew))
	require.Len(t, got, 2)
	assert.Equal(t, []Tag{TagTask}, got[0])

	unsubscribe()
	require.NoError(t, c.DeleteTask(ctx, 1))
	assert.Len(t, got, 2)
}

func TestFailedMutationDoesNotInvalidate(t *testing.T) {
	_, srv := newStub(t, http.StatusInternalServerError, `boom`)
	c := newTestClient(t, srv.URL, "tok")

	calls := 0
	c.Tags().Subscribe(func([]Tag) { calls++ })

	err := c.DeleteTask(context.Background(), 1)
	require.Error(t, err)
	assert.Equal(t, 0, calls)
	assert.Equal(t, "boom", Message(err))
	assert.Equal(t, http.StatusInternalServerError, StatusCode(err))
}

func TestAffects(t *testing.T) {
	assert.True(t, Affects([]Tag{TagTask}, listTasksEndpoint.provides))
	assert.False(t, Affects([]Tag{"User"}, listTasksEndpoint.provides))
	assert.False(t, Affects(nil, listTasksEndpoint.provides))
}

func TestAPIError_Message(t *testing.T) {
	err := newAPIError(http.MethodGet, "/api/tasks", http.StatusBadGateway, nil)
	assert.Equal(t, "Bad Gateway", err.Message)
	assert.Equal(t, "GET /api/tasks: 502 Bad Gateway", err.Error())

	err = newAPIError(http.MethodGet, "/api/tasks", http.StatusBadRequest, []byte(`{"message":"limit too large"}`))
	assert.Equal(t, "limit too large", err.Message)

	raw, _ := json.Marshal(map[string]string{"other": "x"})
	err = newAPIError(http.MethodGet, "/x", http.StatusNotFound, raw)
	assert.Equal(t, "Not Found", err.Message)
	assert.True(t, IsNotFound(err))
}

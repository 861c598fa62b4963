package task

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/taskdesk/internal/api"
	"github.com/thenoetrevino/taskdesk/internal/events"
	"github.com/thenoetrevino/taskdesk/internal/models"
	"github.com/thenoetrevino/taskdesk/internal/validation"
)

// maxLimit mirrors the server's upper bound on page size
const maxLimit = 100

// API is the part of the REST client the task service uses
type API interface {
	ListTasks(ctx context.Context, q models.TaskQuery) (*models.TaskPage, error)
	CreateTask(ctx context.Context, in models.TaskInput) (*models.Task, error)
	UpdateTask(ctx context.Context, id int, in models.TaskInput) (*models.Task, error)
	DeleteTask(ctx context.Context, id int) error
	UpdateTaskStatus(ctx context.Context, id int, status models.Status) error
}

// Authenticator reports whether a bearer token is available
type Authenticator interface {
	IsAuthenticated(ctx context.Context) bool
}

// Service defines all task-related business operations
type Service interface {
	// Read operations
	List(ctx context.Context, q models.TaskQuery) (*models.TaskPage, error)

	// Write operations
	Create(ctx context.Context, in models.TaskInput) (*models.Task, error)
	Update(ctx context.Context, id int, in models.TaskInput) (*models.Task, error)
	Delete(ctx context.Context, id int) error

	// UpdateStatus changes only the status. from is the status the caller
	// currently shows; when it equals to nothing is sent and ErrStatusUnchanged
	// is returned. Pass "" when unknown.
	UpdateStatus(ctx context.Context, id int, from, to models.Status) error
}

// service implements Service interface
type service struct {
	api  API
	auth Authenticator
}

// NewService creates a new task service
func NewService(client API, auth Authenticator) Service {
	return &service{
		api:  client,
		auth: auth,
	}
}

// requireAuth fails fast instead of sending a request the server would reject
func (s *service) requireAuth(ctx context.Context) error {
	if s.auth != nil && !s.auth.IsAuthenticated(ctx) {
		return models.ErrNotAuthenticated
	}
	return nil
}

// List fetches one page of tasks
func (s *service) List(ctx context.Context, q models.TaskQuery) (*models.TaskPage, error) {
	if q.Page < 1 {
		return nil, ErrInvalidPage
	}
	if q.Limit < 1 || q.Limit > maxLimit {
		return nil, ErrInvalidLimit
	}
	if q.Status != "" && !q.Status.Valid() {
		return nil, fmt.Errorf("%w: %q", models.ErrInvalidStatus, q.Status)
	}
	if err := s.requireAuth(ctx); err != nil {
		return nil, err
	}

	page, err := s.api.ListTasks(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return page, nil
}

// Create validates every field before sending the request
func (s *service) Create(ctx context.Context, in models.TaskInput) (*models.Task, error) {
	if err := validation.TaskInput(in); err != nil {
		return nil, err
	}
	if err := s.requireAuth(ctx); err != nil {
		return nil, err
	}

	task, err := s.api.CreateTask(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return task, nil
}

// Update replaces every editable field of task id
func (s *service) Update(ctx context.Context, id int, in models.TaskInput) (*models.Task, error) {
	if id <= 0 {
		return nil, ErrInvalidTaskID
	}
	if err := validation.TaskInput(in); err != nil {
		return nil, err
	}
	if err := s.requireAuth(ctx); err != nil {
		return nil, err
	}

	task, err := s.api.UpdateTask(ctx, id, in)
	if err != nil {
		return nil, fmt.Errorf("failed to update task %d: %w", id, err)
	}
	return task, nil
}

// Delete removes task id
func (s *service) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidTaskID
	}
	if err := s.requireAuth(ctx); err != nil {
		return err
	}

	if err := s.api.DeleteTask(ctx, id); err != nil {
		return fmt.Errorf("failed to delete task %d: %w", id, err)
	}
	return nil
}

// UpdateStatus sends exactly one PATCH carrying the new status
func (s *service) UpdateStatus(ctx context.Context, id int, from, to models.Status) error {
	if id <= 0 {
		return ErrInvalidTaskID
	}
	if !to.Valid() {
		return fmt.Errorf("%w: %q", models.ErrInvalidStatus, to)
	}
	if from == to {
		return ErrStatusUnchanged
	}
	if err := s.requireAuth(ctx); err != nil {
		return err
	}

	if err := s.api.UpdateTaskStatus(ctx, id, to); err != nil {
		return fmt.Errorf("failed to update status of task %d: %w", id, err)
	}
	return nil
}

// ForwardInvalidations publishes every tag invalidation from tags to the
// event daemon so other clients on the same API re-fetch. The returned
// function stops forwarding. A nil publisher forwards nothing.
func ForwardInvalidations(tags *api.TagRegistry, publisher events.EventPublisher, scope string) func() {
	if tags == nil || publisher == nil {
		return func() {}
	}

	return tags.Subscribe(func(invalidated []api.Tag) {
		names := make([]string, len(invalidated))
		for i, tag := range invalidated {
			names[i] = string(tag)
		}

		// Best effort: the daemon is optional
		go func() {
			if err := events.PublishWithRetry(publisher, events.Event{
				Type:  events.EventTagsInvalidated,
				Scope: scope,
				Tags:  names,
			}, 3); err != nil {
				slog.Debug("failed to forward invalidation", "tags", names, "error", err)
			}
		}()
	})
}

// Package database defines repository interfaces for data access
package database

import (
	"context"

	"github.com/thenoetrevino/taskdesk/internal/models"
)

// SessionRepository stores one bearer token per API base URL
type SessionRepository interface {
	GetSession(ctx context.Context, apiURL string) (*models.Session, error)
	SaveSession(ctx context.Context, session *models.Session) error
	DeleteSession(ctx context.Context, apiURL string) error
}

// UserRepository stores API server accounts
type UserRepository interface {
	CreateUser(ctx context.Context, email, passwordHash string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// TaskReader defines read operations for tasks. Every operation is scoped to one owner.
type TaskReader interface {
	ListTasks(ctx context.Context, userID int, q models.TaskQuery) ([]models.Task, int, error)
}

// TaskWriter defines write operations for tasks
type TaskWriter interface {
	CreateTask(ctx context.Context, userID int, in models.TaskInput) (*models.Task, error)
	UpdateTask(ctx context.Context, userID, taskID int, in models.TaskInput) (*models.Task, error)
	DeleteTask(ctx context.Context, userID, taskID int) error
	UpdateTaskStatus(ctx context.Context, userID, taskID int, status models.Status) error
}

// TaskRepository combines all task-related operations
type TaskRepository interface {
	TaskReader
	TaskWriter
}

// Compile-time verification that the repos implement their interfaces
var (
	_ SessionRepository = (*SessionRepo)(nil)
	_ UserRepository    = (*UserRepo)(nil)
	_ TaskRepository    = (*TaskRepo)(nil)
	_ DataStore         = (*Repository)(nil)
)

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/thenoetrevino/taskdesk/internal/models"
)

// TaskRepo persists tasks for the API server
type TaskRepo struct {
	db *sql.DB
}

func NewTaskRepo(db *sql.DB) *TaskRepo {
	return &TaskRepo{db: db}
}

const taskColumns = `id, title, description, status, deadline_ms`

// ============================================================================
// Listing
// ============================================================================

// ListTasks returns one page of the user's tasks, newest first, and the
// number of tasks matching the filters across all pages.
//
// Search matches title or description without regard to ASCII case. A
// deadline filter keeps tasks due on or before the end of that UTC day.
func (r *TaskRepo) ListTasks(ctx context.Context, userID int, q models.TaskQuery) ([]models.Task, int, error) {
	where := []string{"user_id = ?"}
	args := []any{userID}

	if search := strings.TrimSpace(q.Search); search != "" {
		pattern := "%" + escapeLike(search) + "%"
		where = append(where, `(title LIKE ? ESCAPE '\' OR description LIKE ? ESCAPE '\')`)
		args = append(args, pattern, pattern)
	}
	if q.Status != "" {
		where = append(where, "status = ?")
		args = append(args, string(q.Status))
	}
	if !q.Deadline.IsZero() {
		where = append(where, "deadline_ms < ?")
		args = append(args, endOfUTCDay(q.Deadline).UnixMilli())
	}

	clause := strings.Join(where, " AND ")

	var total int
	if err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM tasks WHERE "+clause, args...,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count tasks: %w", err)
	}

	limit := q.Limit
	if limit <= 0 {
		limit = models.DefaultPageSize
	}
	page := max(q.Page, 1)

	rows, err := r.db.QueryContext(ctx,
		"SELECT "+taskColumns+" FROM tasks WHERE "+clause+" ORDER BY id DESC LIMIT ? OFFSET ?",
		append(args, limit, (page-1)*limit)...,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	tasks := []models.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, 0, err
		}
		tasks = append(tasks, *task)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate tasks: %w", err)
	}

	return tasks, total, nil
}

// endOfUTCDay returns midnight UTC after the calendar day t falls on in UTC
func endOfUTCDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, time.UTC)
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// ============================================================================
// Mutations
// ============================================================================

// CreateTask inserts a task owned by userID
func (r *TaskRepo) CreateTask(ctx context.Context, userID int, in models.TaskInput) (*models.Task, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO tasks (user_id, title, description, status, deadline_ms)
		 VALUES (?, ?, ?, ?, ?)`,
		userID, in.Title, in.Description, string(in.Status), in.Deadline.UnixMilli(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read task id: %w", err)
	}

	return r.getTask(ctx, r.db, userID, int(id))
}

// UpdateTask replaces every field of the task and returns the stored result
func (r *TaskRepo) UpdateTask(ctx context.Context, userID, taskID int, in models.TaskInput) (*models.Task, error) {
	var task *models.Task
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx,
			`UPDATE tasks
			 SET title = ?, description = ?, status = ?, deadline_ms = ?, updated_at = CURRENT_TIMESTAMP
			 WHERE id = ? AND user_id = ?`,
			in.Title, in.Description, string(in.Status), in.Deadline.UnixMilli(), taskID, userID,
		)
		if err != nil {
			return fmt.Errorf("failed to update task %d: %w", taskID, err)
		}
		if err := requireAffected(result); err != nil {
			return err
		}

		task, err = r.getTask(ctx, tx, userID, taskID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return task, nil
}

// DeleteTask removes the task. ErrTaskNotFound if the user has no such task.
func (r *TaskRepo) DeleteTask(ctx context.Context, userID, taskID int) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM tasks WHERE id = ? AND user_id = ?", taskID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete task %d: %w", taskID, err)
	}
	return requireAffected(result)
}

// UpdateTaskStatus changes only the status column
func (r *TaskRepo) UpdateTaskStatus(ctx context.Context, userID, taskID int, status models.Status) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ? AND user_id = ?`,
		string(status), taskID, userID)
	if err != nil {
		return fmt.Errorf("failed to update status of task %d: %w", taskID, err)
	}
	return requireAffected(result)
}

// ============================================================================
// Helpers
// ============================================================================

// querier is satisfied by both *sql.DB and *sql.Tx
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *TaskRepo) getTask(ctx context.Context, q querier, userID, taskID int) (*models.Task, error) {
	row := q.QueryRowContext(ctx,
		"SELECT "+taskColumns+" FROM tasks WHERE id = ? AND user_id = ?", taskID, userID)
	task, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTaskNotFound
	}
	return task, err
}

func scanTask(row rowScanner) (*models.Task, error) {
	var (
		task       models.Task
		status     string
		deadlineMS int64
	)
	if err := row.Scan(&task.ID, &task.Title, &task.Description, &status, &deadlineMS); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan task: %w", err)
	}
	task.Status = models.Status(status)
	task.Deadline = time.UnixMilli(deadlineMS).UTC()
	return &task, nil
}

func requireAffected(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return ErrTaskNotFound
	}
	return nil
}

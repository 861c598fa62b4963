package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/taskdesk/internal/models"
)

func setupServerDB(t *testing.T) *Repository {
	t.Helper()
	db, err := Open(context.Background(), ":memory:", ServerMigrations)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewRepository(db)
}

func createUser(t *testing.T, repo *Repository, email string) *models.User {
	t.Helper()
	user, err := repo.CreateUser(context.Background(), email, "hash")
	require.NoError(t, err)
	return user
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func createTask(t *testing.T, repo *Repository, userID int, title string, status models.Status, deadline time.Time) *models.Task {
	t.Helper()
	task, err := repo.CreateTask(context.Background(), userID, models.TaskInput{
		Title:       title,
		Description: title + " description",
		Status:      status,
		Deadline:    deadline,
	})
	require.NoError(t, err)
	return task
}

// ============================================================================
// USER TESTS
// ============================================================================

func TestUserRepo_CreateAndGet(t *testing.T) {
	repo := setupServerDB(t)
	ctx := context.Background()

	user := createUser(t, repo, " ana@example.com ")
	assert.NotZero(t, user.ID)
	assert.Equal(t, "ana@example.com", user.Email)

	got, err := repo.GetUserByEmail(ctx, "ANA@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, "hash", got.PasswordHash)
}

func TestUserRepo_DuplicateEmail(t *testing.T) {
	repo := setupServerDB(t)
	createUser(t, repo, "ana@example.com")

	_, err := repo.CreateUser(context.Background(), "Ana@Example.com", "other")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestUserRepo_NotFound(t *testing.T) {
	repo := setupServerDB(t)
	_, err := repo.GetUserByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

// ============================================================================
// TASK TESTS
// ============================================================================

func TestTaskRepo_CreateRoundTrip(t *testing.T) {
	repo := setupServerDB(t)
	user := createUser(t, repo, "a@b.io")

	deadline := time.Date(2026, 3, 4, 15, 30, 0, 0, time.FixedZone("x", 2*3600))
	task := createTask(t, repo, user.ID, "Write", models.StatusNew, deadline)

	assert.Equal(t, "Write", task.Title)
	assert.Equal(t, models.StatusNew, task.Status)
	assert.True(t, task.Deadline.Equal(deadline))
	assert.Equal(t, time.UTC, task.Deadline.Location())
}

func TestTaskRepo_ListPaginationAndTotal(t *testing.T) {
	repo := setupServerDB(t)
	user := createUser(t, repo, "a@b.io")
	for i := 0; i < 25; i++ {
		createTask(t, repo, user.ID, "task", models.StatusNew, day(2026, 1, 1))
	}

	tasks, total, err := repo.ListTasks(context.Background(), user.ID, models.TaskQuery{Page: 3, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 25, total)
	assert.Len(t, tasks, 5)

	tasks, _, err = repo.ListTasks(context.Background(), user.ID, models.TaskQuery{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, tasks, 10)
	assert.Greater(t, tasks[0].ID, tasks[9].ID, "newest first")

	tasks, total, err = repo.ListTasks(context.Background(), user.ID, models.TaskQuery{Page: 9, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 25, total)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)
}

func TestTaskRepo_ListFilters(t *testing.T) {
	repo := setupServerDB(t)
	ctx := context.Background()
	user := createUser(t, repo, "a@b.io")

	createTask(t, repo, user.ID, "Buy milk", models.StatusNew, day(2026, 1, 10))
	createTask(t, repo, user.ID, "Pay rent", models.StatusCompleted, day(2026, 1, 1))
	createTask(t, repo, user.ID, "100% done", models.StatusInProgress, time.Date(2026, 1, 5, 23, 0, 0, 0, time.UTC))

	t.Run("search is case insensitive", func(t *testing.T) {
		tasks, total, err := repo.ListTasks(ctx, user.ID, models.TaskQuery{Search: "MILK", Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Equal(t, "Buy milk", tasks[0].Title)
	})

	t.Run("search escapes wildcards", func(t *testing.T) {
		_, total, err := repo.ListTasks(ctx, user.ID, models.TaskQuery{Search: "%", Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
	})

	t.Run("status", func(t *testing.T) {
		tasks, total, err := repo.ListTasks(ctx, user.ID, models.TaskQuery{Status: models.StatusCompleted, Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Equal(t, "Pay rent", tasks[0].Title)
	})

	t.Run("deadline includes the whole day", func(t *testing.T) {
		_, total, err := repo.ListTasks(ctx, user.ID, models.TaskQuery{Deadline: day(2026, 1, 5), Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
	})

	t.Run("filters combine", func(t *testing.T) {
		_, total, err := repo.ListTasks(ctx, user.ID, models.TaskQuery{
			Deadline: day(2026, 1, 31),
			Status:   models.StatusNew,
			Search:   "rent",
			Limit:    10,
		})
		require.NoError(t, err)
		assert.Equal(t, 0, total)
	})
}

func TestTaskRepo_ScopedToOwner(t *testing.T) {
	repo := setupServerDB(t)
	ctx := context.Background()
	alice := createUser(t, repo, "alice@b.io")
	bob := createUser(t, repo, "bob@b.io")

	task := createTask(t, repo, alice.ID, "private", models.StatusNew, day(2026, 1, 1))

	_, total, err := repo.ListTasks(ctx, bob.ID, models.TaskQuery{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 0, total)

	assert.ErrorIs(t, repo.DeleteTask(ctx, bob.ID, task.ID), ErrTaskNotFound)
	assert.ErrorIs(t, repo.UpdateTaskStatus(ctx, bob.ID, task.ID, models.StatusCompleted), ErrTaskNotFound)
	_, err = repo.UpdateTask(ctx, bob.ID, task.ID, task.Input())
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestTaskRepo_UpdateDeleteStatus(t *testing.T) {
	repo := setupServerDB(t)
	ctx := context.Background()
	user := createUser(t, repo, "a@b.io")
	task := createTask(t, repo, user.ID, "old", models.StatusNew, day(2026, 1, 1))

	updated, err := repo.UpdateTask(ctx, user.ID, task.ID, models.TaskInput{
		Title:       "new",
		Description: "changed",
		Status:      models.StatusInProgress,
		Deadline:    day(2026, 2, 2),
	})
	require.NoError(t, err)
	assert.Equal(t, "new", updated.Title)
	assert.Equal(t, models.StatusInProgress, updated.Status)
	assert.True(t, updated.Deadline.Equal(day(2026, 2, 2)))

	require.NoError(t, repo.UpdateTaskStatus(ctx, user.ID, task.ID, models.StatusCompleted))
	tasks, _, err := repo.ListTasks(ctx, user.ID, models.TaskQuery{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, tasks[0].Status)
	assert.Equal(t, "new", tasks[0].Title, "status change leaves other fields alone")

	require.NoError(t, repo.DeleteTask(ctx, user.ID, task.ID))
	assert.ErrorIs(t, repo.DeleteTask(ctx, user.ID, task.ID), ErrTaskNotFound)
}

func TestTaskRepo_StatusCheckConstraint(t *testing.T) {
	repo := setupServerDB(t)
	user := createUser(t, repo, "a@b.io")

	_, err := repo.CreateTask(context.Background(), user.ID, models.TaskInput{
		Title: "x", Description: "y", Status: "archived", Deadline: day(2026, 1, 1),
	})
	assert.Error(t, err)
}

// ============================================================================
// PERSISTENCE TESTS
// ============================================================================

func TestServerDB_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "server.db")

	db, err := Open(ctx, path, ServerMigrations)
	require.NoError(t, err)
	repo := NewRepository(db)
	user := createUser(t, repo, "a@b.io")
	createTask(t, repo, user.ID, "survives", models.StatusNew, day(2026, 1, 1))
	require.NoError(t, db.Close())

	// Reopening runs migrations again; they must be idempotent
	db, err = Open(ctx, path, ServerMigrations)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()
	repo = NewRepository(db)

	tasks, total, err := repo.ListTasks(ctx, user.ID, models.TaskQuery{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, "survives", tasks[0].Title)

	var versions int
	require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM schema_migrations").Scan(&versions))
	assert.Equal(t, len(ServerMigrations), versions)
}

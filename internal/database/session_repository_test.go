package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/taskdesk/internal/models"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

func setupTestDB(t *testing.T) *SessionRepo {
	t.Helper()
	db, err := Open(context.Background(), ":memory:", ClientMigrations)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSessionRepo(db)
}

// ============================================================================
// SESSION TESTS
// ============================================================================

func TestSessionRepo_SaveAndGet(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	err := repo.SaveSession(ctx, &models.Session{APIURL: "http://a", Token: "t1", Email: "a@b.io"})
	require.NoError(t, err)

	session, err := repo.GetSession(ctx, "http://a")
	require.NoError(t, err)
	assert.Equal(t, "t1", session.Token)
	assert.Equal(t, "a@b.io", session.Email)
	assert.False(t, session.CreatedAt.IsZero())
}

func TestSessionRepo_SaveReplaces(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveSession(ctx, &models.Session{APIURL: "http://a", Token: "old"}))
	require.NoError(t, repo.SaveSession(ctx, &models.Session{APIURL: "http://a", Token: "new"}))

	session, err := repo.GetSession(ctx, "http://a")
	require.NoError(t, err)
	assert.Equal(t, "new", session.Token)
}

func TestSessionRepo_ScopedByAPIURL(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveSession(ctx, &models.Session{APIURL: "http://a", Token: "ta"}))

	_, err := repo.GetSession(ctx, "http://b")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionRepo_Delete(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveSession(ctx, &models.Session{APIURL: "http://a", Token: "ta"}))
	require.NoError(t, repo.DeleteSession(ctx, "http://a"))
	require.NoError(t, repo.DeleteSession(ctx, "http://a"), "deleting twice is fine")

	_, err := repo.GetSession(ctx, "http://a")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

// ============================================================================
// MIGRATION TESTS
// ============================================================================

func TestRunMigrations_Idempotent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "client.db")

	db, err := Open(ctx, path, ClientMigrations)
	require.NoError(t, err)
	require.NoError(t, NewSessionRepo(db).SaveSession(ctx, &models.Session{APIURL: "http://a", Token: "kept"}))
	require.NoError(t, db.Close())

	// Reopen: migrations must not rerun or drop data
	db, err = Open(ctx, path, ClientMigrations)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	var version int
	require.NoError(t, db.QueryRow("SELECT MAX(version) FROM schema_migrations").Scan(&version))
	assert.Equal(t, 1, version)

	session, err := NewSessionRepo(db).GetSession(ctx, "http://a")
	require.NoError(t, err)
	assert.Equal(t, "kept", session.Token)
}

func TestRunMigrations_AppliesNewerOnly(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, ":memory:", ClientMigrations)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	extra := append([]Migration{}, ClientMigrations...)
	extra = append(extra, Migration{Version: 2, Name: "add_notes", SQL: "CREATE TABLE notes (id INTEGER PRIMARY KEY)"})
	require.NoError(t, RunMigrations(ctx, db, extra))

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count))
	assert.Equal(t, 2, count)

	bad := append(extra, Migration{Version: 3, Name: "broken", SQL: "CREATE TABLE"})
	assert.Error(t, RunMigrations(ctx, db, bad))
}

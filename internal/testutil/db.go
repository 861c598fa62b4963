package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/taskdesk/internal/database"
)

// SetupTestDB creates an in-memory client database with the sessions schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(context.Background(), ":memory:", database.ClientMigrations)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

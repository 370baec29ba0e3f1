package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/hirepaso/internal/database"
)

// SetupTestDB creates an in-memory session database with full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/hirepaso/internal/session"
)

func TestSessionSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	db, path := setupTestDBFile(t)

	require.NoError(t, NewSessionRepository(db).Save(ctx, "work", session.Tokens{AccessToken: "a1", RefreshToken: "r1"}))
	require.NoError(t, NewSessionRepository(db).RememberVacancy(ctx, "work", "12"))
	require.NoError(t, db.Close())

	reopened, err := Open(ctx, path)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	repo := NewSessionRepository(reopened)
	tokens, err := repo.Load(ctx, "work")
	require.NoError(t, err)
	assert.Equal(t, "a1", tokens.AccessToken)
	assert.Equal(t, "r1", tokens.RefreshToken)

	last, err := repo.LastVacancy(ctx, "work")
	require.NoError(t, err)
	assert.Equal(t, "12", last)
}

func TestMigrationsAreIdempotent(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)

	require.NoError(t, runMigrations(ctx, db))
	require.NoError(t, runMigrations(ctx, db))

	var count int
	err := db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN ('session_tokens', 'recent_vacancies')",
	).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

package database

import (
	"context"
	"database/sql"
)

// runMigrations creates the database schema if needed
func runMigrations(ctx context.Context, db *sql.DB) error {
	// One row per profile; tokens are replaced wholesale on refresh
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS session_tokens (
			profile TEXT PRIMARY KEY,
			access_token TEXT NOT NULL,
			refresh_token TEXT NOT NULL DEFAULT '',
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return err
	}

	// Last vacancy opened per profile, so `hirepaso board` can reopen it
	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS recent_vacancies (
			profile TEXT NOT NULL,
			vacancy_id TEXT NOT NULL,
			opened_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (profile, vacancy_id)
		)
	`)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_recent_vacancies_opened
		ON recent_vacancies(profile, opened_at DESC)
	`)
	return err
}

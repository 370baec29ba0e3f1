package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/thenoetrevino/hirepaso/internal/session"
)

// SessionRepository stores session tokens in SQLite. It implements session.Store.
type SessionRepository struct {
	db *sql.DB
}

// NewSessionRepository creates a repository on an initialized database
func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Load returns the tokens for profile, session.ErrNoTokens if none are stored
func (r *SessionRepository) Load(ctx context.Context, profile string) (session.Tokens, error) {
	var tokens session.Tokens
	err := r.db.QueryRowContext(ctx,
		`SELECT access_token, refresh_token, updated_at FROM session_tokens WHERE profile = ?`,
		profile,
	).Scan(&tokens.AccessToken, &tokens.RefreshToken, &tokens.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return session.Tokens{}, session.ErrNoTokens
	}
	if err != nil {
		return session.Tokens{}, fmt.Errorf("failed to load session: %w", err)
	}
	return tokens, nil
}

// Save upserts the tokens for profile
func (r *SessionRepository) Save(ctx context.Context, profile string, tokens session.Tokens) error {
	updatedAt := tokens.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO session_tokens (profile, access_token, refresh_token, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(profile) DO UPDATE SET
			access_token = excluded.access_token,
			refresh_token = excluded.refresh_token,
			updated_at = excluded.updated_at
	`, profile, tokens.AccessToken, tokens.RefreshToken, updatedAt)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Clear deletes the tokens for profile. Clearing a missing profile is not an error.
func (r *SessionRepository) Clear(ctx context.Context, profile string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM session_tokens WHERE profile = ?`, profile); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// recentVacancyLimit is how many vacancies are kept per profile
const recentVacancyLimit = 10

// RememberVacancy records that profile opened vacancyID and forgets all but
// the most recent vacancies for that profile.
func (r *SessionRepository) RememberVacancy(ctx context.Context, profile, vacancyID string) error {
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO recent_vacancies (profile, vacancy_id, opened_at)
			VALUES (?, ?, ?)
			ON CONFLICT(profile, vacancy_id) DO UPDATE SET opened_at = excluded.opened_at
		`, profile, vacancyID, time.Now().UTC()); err != nil {
			return err
		}

		_, err := tx.ExecContext(ctx, `
			DELETE FROM recent_vacancies
			WHERE profile = ? AND vacancy_id NOT IN (
				SELECT vacancy_id FROM recent_vacancies
				WHERE profile = ?
				ORDER BY opened_at DESC
				LIMIT ?
			)
		`, profile, profile, recentVacancyLimit)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to remember vacancy: %w", err)
	}
	return nil
}

// RecentVacancies returns the vacancies profile opened, newest first
func (r *SessionRepository) RecentVacancies(ctx context.Context, profile string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT vacancy_id FROM recent_vacancies
		WHERE profile = ?
		ORDER BY opened_at DESC
	`, profile)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent vacancies: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan recent vacancy: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// LastVacancy returns the most recently opened vacancy for profile, "" if none
func (r *SessionRepository) LastVacancy(ctx context.Context, profile string) (string, error) {
	var vacancyID string
	err := r.db.QueryRowContext(ctx, `
		SELECT vacancy_id FROM recent_vacancies
		WHERE profile = ?
		ORDER BY opened_at DESC
		LIMIT 1
	`, profile).Scan(&vacancyID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read recent vacancy: %w", err)
	}
	return vacancyID, nil
}

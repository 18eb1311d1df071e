package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// studySessionRepository implements StudySessionRepository
type studySessionRepository struct {
	db *sql.DB
}

// NewStudySessionRepository creates a new study session repository
func NewStudySessionRepository(db *sql.DB) *studySessionRepository {
	return &studySessionRepository{
		db: db,
	}
}

// Start opens a new session and returns its generated ID. Multiple open
// sessions per user and dictionary are allowed.
func (r *studySessionRepository) Start(ctx context.Context, userID string, dictionaryID int64, startedAt time.Time) (int64, error) {
	query := `
		INSERT INTO study_sessions (user_id, dictionary_id, started_at)
		VALUES (?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query, userID, dictionaryID, startedAt)
	if err != nil {
		return 0, fmt.Errorf("failed to insert study session: %w", err)
	}

	sessionID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get session ID: %w", err)
	}

	return sessionID, nil
}

// End sets ended_at on the session matching (sessionID, userID, dictionaryID).
// A mismatch on any of the three matches zero rows and is not an error;
// ending an already-ended session overwrites ended_at (idempotent for the
// same timestamp).
func (r *studySessionRepository) End(ctx context.Context, sessionID int64, userID string, dictionaryID int64, endedAt time.Time) error {
	query := `
		UPDATE study_sessions
		SET ended_at = ?
		WHERE id = ? AND user_id = ? AND dictionary_id = ?
	`

	if _, err := r.db.ExecContext(ctx, query, endedAt, sessionID, userID, dictionaryID); err != nil {
		return fmt.Errorf("failed to end study session: %w", err)
	}

	return nil
}

// TotalSeconds sums the duration of all ended sessions for a user and
// dictionary, floored to whole seconds. Open sessions are excluded.
func (r *studySessionRepository) TotalSeconds(ctx context.Context, userID string, dictionaryID int64) (int64, error) {
	query := `
		SELECT COALESCE(SUM(TIMESTAMPDIFF(SECOND, started_at, ended_at)), 0)
		FROM study_sessions
		WHERE user_id = ? AND dictionary_id = ? AND ended_at IS NOT NULL
	`

	var seconds int64
	if err := r.db.QueryRowContext(ctx, query, userID, dictionaryID).Scan(&seconds); err != nil {
		return 0, fmt.Errorf("failed to sum study time: %w", err)
	}

	return seconds, nil
}

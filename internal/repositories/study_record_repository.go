package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/hanzicards/backend/internal/models"
)

// studyRecordRepository implements StudyRecordRepository
type studyRecordRepository struct {
	db *sql.DB
}

// NewStudyRecordRepository creates a new study record repository
func NewStudyRecordRepository(db *sql.DB) *studyRecordRepository {
	return &studyRecordRepository{
		db: db,
	}
}

// Get retrieves the study record for one (user, dictionary, character) triple.
// Returns nil without error when no record exists yet.
func (r *studyRecordRepository) Get(ctx context.Context, userID string, dictionaryID, characterID int64) (*models.StudyRecord, error) {
	query := `
		SELECT id, user_id, dictionary_id, character_id, ease_factor, ` + "`interval`" + `, repetitions,
		       last_reviewed_at, next_review_at, last_rating
		FROM study_records
		WHERE user_id = ? AND dictionary_id = ? AND character_id = ?
	`

	var record models.StudyRecord
	err := r.db.QueryRowContext(ctx, query, userID, dictionaryID, characterID).Scan(
		&record.ID,
		&record.UserID,
		&record.DictionaryID,
		&record.CharacterID,
		&record.EaseFactor,
		&record.Interval,
		&record.Repetitions,
		&record.LastReviewedAt,
		&record.NextReviewAt,
		&record.LastRating,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query study record: %w", err)
	}

	return &record, nil
}

// Upsert inserts or replaces the study record for the record's
// (user, dictionary, character) triple in a single atomic statement.
func (r *studyRecordRepository) Upsert(ctx context.Context, record *models.StudyRecord) error {
	query := `
		INSERT INTO study_records
		(user_id, dictionary_id, character_id, ease_factor, ` + "`interval`" + `, repetitions,
		 last_reviewed_at, next_review_at, last_rating)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			ease_factor = VALUES(ease_factor),
			` + "`interval`" + ` = VALUES(` + "`interval`" + `),
			repetitions = VALUES(repetitions),
			last_reviewed_at = VALUES(last_reviewed_at),
			next_review_at = VALUES(next_review_at),
			last_rating = VALUES(last_rating)
	`

	_, err := r.db.ExecContext(ctx, query,
		record.UserID,
		record.DictionaryID,
		record.CharacterID,
		record.EaseFactor,
		record.Interval,
		record.Repetitions,
		record.LastReviewedAt,
		record.NextReviewAt,
		record.LastRating,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert study record: %w", err)
	}

	return nil
}

// ListDue retrieves the due queue for a user and dictionary: every character
// without a study record (unseen) plus every character due at or before now.
// Unseen characters come first, then due characters by ascending due time.
func (r *studyRecordRepository) ListDue(ctx context.Context, userID string, dictionaryID int64, now time.Time) ([]models.QueueItem, error) {
	query := `
		SELECT c.hanzi, c.pinyin, sr.next_review_at
		FROM characters c
		LEFT JOIN study_records sr
			ON sr.character_id = c.id AND sr.user_id = ? AND sr.dictionary_id = ?
		WHERE c.dictionary_id = ?
			AND (sr.next_review_at IS NULL OR sr.next_review_at <= ?)
		ORDER BY sr.next_review_at IS NULL DESC, sr.next_review_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, userID, dictionaryID, dictionaryID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to query due queue: %w", err)
	}
	defer rows.Close()

	items := []models.QueueItem{}
	for rows.Next() {
		var item models.QueueItem
		var dueAt sql.NullTime
		if err := rows.Scan(&item.Hanzi, &item.Pinyin, &dueAt); err != nil {
			return nil, fmt.Errorf("failed to scan queue item: %w", err)
		}
		if dueAt.Valid {
			due := dueAt.Time
			item.DueAt = &due
		} else {
			item.IsNew = true
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return items, nil
}

// CountKnown counts the characters with at least one successful review streak
func (r *studyRecordRepository) CountKnown(ctx context.Context, userID string, dictionaryID int64) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM study_records
		WHERE user_id = ? AND dictionary_id = ? AND repetitions > 0
	`

	var count int
	if err := r.db.QueryRowContext(ctx, query, userID, dictionaryID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count known characters: %w", err)
	}

	return count, nil
}

// CountDue counts the reviewed characters due at or before now
func (r *studyRecordRepository) CountDue(ctx context.Context, userID string, dictionaryID int64, now time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM study_records
		WHERE user_id = ? AND dictionary_id = ? AND next_review_at <= ?
	`

	var count int
	if err := r.db.QueryRowContext(ctx, query, userID, dictionaryID, now).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count due characters: %w", err)
	}

	return count, nil
}

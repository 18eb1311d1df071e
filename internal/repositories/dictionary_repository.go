package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/hanzicards/backend/internal/models"
)

// dictionaryRepository implements DictionaryRepository
type dictionaryRepository struct {
	db *sql.DB
}

// NewDictionaryRepository creates a new dictionary repository
func NewDictionaryRepository(db *sql.DB) *dictionaryRepository {
	return &dictionaryRepository{
		db: db,
	}
}

// GetByID retrieves a dictionary by ID. Returns nil without error when the
// dictionary does not exist.
func (r *dictionaryRepository) GetByID(ctx context.Context, dictionaryID int64) (*models.Dictionary, error) {
	query := `
		SELECT id, owner_id, name, visibility, created_at, updated_at
		FROM dictionaries
		WHERE id = ?
	`

	var dict models.Dictionary
	err := r.db.QueryRowContext(ctx, query, dictionaryID).Scan(
		&dict.ID,
		&dict.OwnerID,
		&dict.Name,
		&dict.Visibility,
		&dict.CreatedAt,
		&dict.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query dictionary: %w", err)
	}

	return &dict, nil
}

// ListVisible retrieves the dictionaries a user can see: their own plus all
// public ones, own dictionaries first, then by name.
func (r *dictionaryRepository) ListVisible(ctx context.Context, userID string) ([]models.Dictionary, error) {
	query := `
		SELECT id, owner_id, name, visibility, created_at, updated_at
		FROM dictionaries
		WHERE owner_id = ? OR visibility = 'public'
		ORDER BY owner_id = ? DESC, name ASC
	`

	rows, err := r.db.QueryContext(ctx, query, userID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query dictionaries: %w", err)
	}
	defer rows.Close()

	var dicts []models.Dictionary
	for rows.Next() {
		var dict models.Dictionary
		err := rows.Scan(
			&dict.ID,
			&dict.OwnerID,
			&dict.Name,
			&dict.Visibility,
			&dict.CreatedAt,
			&dict.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan dictionary: %w", err)
		}
		dicts = append(dicts, dict)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return dicts, nil
}

// CountByOwner counts the dictionaries a user owns
func (r *dictionaryRepository) CountByOwner(ctx context.Context, userID string) (int, error) {
	query := `SELECT COUNT(*) FROM dictionaries WHERE owner_id = ?`

	var count int
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count dictionaries: %w", err)
	}

	return count, nil
}

// Create inserts a new dictionary and returns its generated ID.
// The unique (owner_id, name) key rejects duplicate names per owner.
func (r *dictionaryRepository) Create(ctx context.Context, ownerID, name string, visibility models.Visibility, now time.Time) (int64, error) {
	query := `
		INSERT INTO dictionaries (owner_id, name, visibility, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query, ownerID, name, visibility, now, now)
	if err != nil {
		return 0, fmt.Errorf("failed to insert dictionary: %w", err)
	}

	dictionaryID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get dictionary ID: %w", err)
	}

	return dictionaryID, nil
}

// Update changes a dictionary's name and visibility
func (r *dictionaryRepository) Update(ctx context.Context, dictionaryID int64, name string, visibility models.Visibility, now time.Time) error {
	query := `
		UPDATE dictionaries
		SET name = ?, visibility = ?, updated_at = ?
		WHERE id = ?
	`

	if _, err := r.db.ExecContext(ctx, query, name, visibility, now, dictionaryID); err != nil {
		return fmt.Errorf("failed to update dictionary: %w", err)
	}

	return nil
}

// Delete removes a dictionary together with its study records, study
// sessions and characters in one transaction. Ownership is a lifetime
// binding: nothing scoped to the dictionary survives it.
func (r *dictionaryRepository) Delete(ctx context.Context, dictionaryID int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	statements := []string{
		`DELETE FROM study_records WHERE dictionary_id = ?`,
		`DELETE FROM study_sessions WHERE dictionary_id = ?`,
		`DELETE FROM characters WHERE dictionary_id = ?`,
		`DELETE FROM dictionaries WHERE id = ?`,
	}
	for _, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt, dictionaryID); err != nil {
			return fmt.Errorf("failed to delete dictionary: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

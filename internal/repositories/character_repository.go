package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/hanzicards/backend/internal/models"
)

// characterRepository implements CharacterRepository
type characterRepository struct {
	db *sql.DB
}

// NewCharacterRepository creates a new character repository
func NewCharacterRepository(db *sql.DB) *characterRepository {
	return &characterRepository{
		db: db,
	}
}

// GetByHanzi retrieves a character by its glyph within a dictionary.
// Returns nil without error when the character is not in the dictionary.
func (r *characterRepository) GetByHanzi(ctx context.Context, dictionaryID int64, hanzi string) (*models.Character, error) {
	query := `
		SELECT id, dictionary_id, hanzi, pinyin, created_at
		FROM characters
		WHERE dictionary_id = ? AND hanzi = ?
	`

	var char models.Character
	err := r.db.QueryRowContext(ctx, query, dictionaryID, hanzi).Scan(
		&char.ID,
		&char.DictionaryID,
		&char.Hanzi,
		&char.Pinyin,
		&char.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query character: %w", err)
	}

	return &char, nil
}

// Insert adds a character to a dictionary, skipping glyphs already present.
// Returns true when a row was actually inserted.
func (r *characterRepository) Insert(ctx context.Context, dictionaryID int64, hanzi, pinyin string, now time.Time) (bool, error) {
	query := `
		INSERT IGNORE INTO characters (dictionary_id, hanzi, pinyin, created_at)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query, dictionaryID, hanzi, pinyin, now)
	if err != nil {
		return false, fmt.Errorf("failed to insert character: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return affected > 0, nil
}

// List retrieves all characters of a dictionary ordered by glyph
func (r *characterRepository) List(ctx context.Context, dictionaryID int64) ([]models.CharacterListItem, error) {
	query := `
		SELECT hanzi, pinyin
		FROM characters
		WHERE dictionary_id = ?
		ORDER BY hanzi ASC
	`

	rows, err := r.db.QueryContext(ctx, query, dictionaryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query characters: %w", err)
	}
	defer rows.Close()

	items := []models.CharacterListItem{}
	for rows.Next() {
		var item models.CharacterListItem
		if err := rows.Scan(&item.Hanzi, &item.Pinyin); err != nil {
			return nil, fmt.Errorf("failed to scan character: %w", err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return items, nil
}

// CountByDictionary counts the characters in a dictionary
func (r *characterRepository) CountByDictionary(ctx context.Context, dictionaryID int64) (int, error) {
	query := `SELECT COUNT(*) FROM characters WHERE dictionary_id = ?`

	var count int
	if err := r.db.QueryRowContext(ctx, query, dictionaryID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count characters: %w", err)
	}

	return count, nil
}

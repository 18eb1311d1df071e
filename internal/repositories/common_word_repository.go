package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hanzicards/backend/internal/models"
)

// commonWordRepository implements CommonWordRepository
type commonWordRepository struct {
	db *sql.DB
}

// NewCommonWordRepository creates a new common word repository
func NewCommonWordRepository(db *sql.DB) *commonWordRepository {
	return &commonWordRepository{
		db: db,
	}
}

// GetByHanzi retrieves the most frequent words containing a character,
// read from the prebuilt character-word index.
func (r *commonWordRepository) GetByHanzi(ctx context.Context, hanzi string, limit int) ([]models.CommonWord, error) {
	query := `
		SELECT cw.word, cw.frequency
		FROM character_word_index cwi
		JOIN common_words cw ON cw.id = cwi.word_id
		WHERE cwi.hanzi = ?
		ORDER BY cw.frequency DESC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, hanzi, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query common words: %w", err)
	}
	defer rows.Close()

	words := []models.CommonWord{}
	for rows.Next() {
		var word models.CommonWord
		if err := rows.Scan(&word.Word, &word.Frequency); err != nil {
			return nil, fmt.Errorf("failed to scan common word: %w", err)
		}
		words = append(words, word)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return words, nil
}

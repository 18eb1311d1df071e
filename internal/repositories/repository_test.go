package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupCharacterRepository creates a character repository with a mock database
func setupCharacterRepository(t *testing.T) (*characterRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewCharacterRepository(db)

	cleanup := func() {
		db.Close()
	}

	return repo, mock, cleanup
}

func TestNewCharacterRepository(t *testing.T) {
	db := &sql.DB{}

	repo := NewCharacterRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestCharacterRepository_GetByHanzi(t *testing.T) {
	tests := []struct {
		name          string
		dictionaryID  int64
		hanzi         string
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		expectedNil   bool
	}{
		{
			name:         "success",
			dictionaryID: 1,
			hanzi:        "好",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "dictionary_id", "hanzi", "pinyin", "created_at"}).
					AddRow(7, 1, "好", "hao3", time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))
				mock.ExpectQuery(`SELECT id, dictionary_id, hanzi, pinyin, created_at FROM characters WHERE dictionary_id = \? AND hanzi = \?`).
					WithArgs(int64(1), "好").
					WillReturnRows(rows)
			},
			expectedError: false,
			expectedNil:   false,
		},
		{
			name:         "not found returns nil without error",
			dictionaryID: 1,
			hanzi:        "水",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, dictionary_id, hanzi, pinyin, created_at FROM characters WHERE dictionary_id = \? AND hanzi = \?`).
					WithArgs(int64(1), "水").
					WillReturnError(sql.ErrNoRows)
			},
			expectedError: false,
			expectedNil:   true,
		},
		{
			name:         "database error",
			dictionaryID: 1,
			hanzi:        "好",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, dictionary_id, hanzi, pinyin, created_at FROM characters WHERE dictionary_id = \? AND hanzi = \?`).
					WithArgs(int64(1), "好").
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
			expectedNil:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupCharacterRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			result, err := repo.GetByHanzi(context.Background(), tt.dictionaryID, tt.hanzi)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.expectedNil {
				assert.Nil(t, result)
			} else {
				require.NotNil(t, result)
				assert.Equal(t, tt.hanzi, result.Hanzi)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCharacterRepository_Insert(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		inserted      bool
	}{
		{
			name: "inserted new character",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT IGNORE INTO characters \(dictionary_id, hanzi, pinyin, created_at\) VALUES \(\?, \?, \?, \?\)`).
					WithArgs(int64(1), "好", "hao3", now).
					WillReturnResult(sqlmock.NewResult(7, 1))
			},
			expectedError: false,
			inserted:      true,
		},
		{
			name: "duplicate glyph skipped",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT IGNORE INTO characters \(dictionary_id, hanzi, pinyin, created_at\) VALUES \(\?, \?, \?, \?\)`).
					WithArgs(int64(1), "好", "hao3", now).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			expectedError: false,
			inserted:      false,
		},
		{
			name: "database error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT IGNORE INTO characters \(dictionary_id, hanzi, pinyin, created_at\) VALUES \(\?, \?, \?, \?\)`).
					WithArgs(int64(1), "好", "hao3", now).
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
			inserted:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupCharacterRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			inserted, err := repo.Insert(context.Background(), 1, "好", "hao3", now)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.inserted, inserted)

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCharacterRepository_List(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		expectedCount int
	}{
		{
			name: "success",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"hanzi", "pinyin"}).
					AddRow("好", "hao3").
					AddRow("水", "shui3")
				mock.ExpectQuery(`SELECT hanzi, pinyin FROM characters WHERE dictionary_id = \? ORDER BY hanzi ASC`).
					WithArgs(int64(1)).
					WillReturnRows(rows)
			},
			expectedError: false,
			expectedCount: 2,
		},
		{
			name: "empty dictionary",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"hanzi", "pinyin"})
				mock.ExpectQuery(`SELECT hanzi, pinyin FROM characters WHERE dictionary_id = \? ORDER BY hanzi ASC`).
					WithArgs(int64(1)).
					WillReturnRows(rows)
			},
			expectedError: false,
			expectedCount: 0,
		},
		{
			name: "database error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT hanzi, pinyin FROM characters WHERE dictionary_id = \? ORDER BY hanzi ASC`).
					WithArgs(int64(1)).
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
			expectedCount: 0,
		},
		{
			name: "rows iteration error",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"hanzi", "pinyin"}).
					AddRow("好", "hao3").
					RowError(0, errors.New("row error"))
				mock.ExpectQuery(`SELECT hanzi, pinyin FROM characters WHERE dictionary_id = \? ORDER BY hanzi ASC`).
					WithArgs(int64(1)).
					WillReturnRows(rows)
			},
			expectedError: true,
			expectedCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupCharacterRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			result, err := repo.List(context.Background(), 1)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Len(t, result, tt.expectedCount)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCharacterRepository_CountByDictionary(t *testing.T) {
	repo, mock, cleanup := setupCharacterRepository(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"COUNT(*)"}).AddRow(42)
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM characters WHERE dictionary_id = \?`).
		WithArgs(int64(1)).
		WillReturnRows(rows)

	count, err := repo.CountByDictionary(context.Background(), 1)

	assert.NoError(t, err)
	assert.Equal(t, 42, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// setupCommonWordRepository creates a common word repository with a mock database
func setupCommonWordRepository(t *testing.T) (*commonWordRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewCommonWordRepository(db)

	cleanup := func() {
		db.Close()
	}

	return repo, mock, cleanup
}

func TestCommonWordRepository_GetByHanzi(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		expectedCount int
	}{
		{
			name: "success ordered by frequency",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"word", "frequency"}).
					AddRow("你好", 9500).
					AddRow("好好", 4200)
				mock.ExpectQuery(`SELECT cw.word, cw.frequency FROM character_word_index cwi JOIN common_words cw ON cw.id = cwi.word_id WHERE cwi.hanzi = \? ORDER BY cw.frequency DESC LIMIT \?`).
					WithArgs("好", 10).
					WillReturnRows(rows)
			},
			expectedError: false,
			expectedCount: 2,
		},
		{
			name: "no words indexed",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"word", "frequency"})
				mock.ExpectQuery(`SELECT cw.word, cw.frequency FROM character_word_index cwi JOIN common_words cw ON cw.id = cwi.word_id WHERE cwi.hanzi = \? ORDER BY cw.frequency DESC LIMIT \?`).
					WithArgs("好", 10).
					WillReturnRows(rows)
			},
			expectedError: false,
			expectedCount: 0,
		},
		{
			name: "database error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT cw.word, cw.frequency FROM character_word_index cwi JOIN common_words cw ON cw.id = cwi.word_id WHERE cwi.hanzi = \? ORDER BY cw.frequency DESC LIMIT \?`).
					WithArgs("好", 10).
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
			expectedCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupCommonWordRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			result, err := repo.GetByHanzi(context.Background(), "好", 10)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Len(t, result, tt.expectedCount)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

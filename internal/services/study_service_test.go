package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/hanzicards/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockStudyRecordRepo is a mock implementation of StudyRecordRepository
type mockStudyRecordRepo struct {
	mu       sync.Mutex
	record   *models.StudyRecord
	items    []models.QueueItem
	err      error
	upserted *models.StudyRecord
}

func (m *mockStudyRecordRepo) Get(ctx context.Context, userID string, dictionaryID, characterID int64) (*models.StudyRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return m.record, nil
}

func (m *mockStudyRecordRepo) Upsert(ctx context.Context, record *models.StudyRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.upserted = record
	return nil
}

func (m *mockStudyRecordRepo) ListDue(ctx context.Context, userID string, dictionaryID int64, now time.Time) ([]models.QueueItem, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.items, nil
}

// mockStudySessionRepo is a mock implementation of StudySessionRepository
type mockStudySessionRepo struct {
	startID int64
	err     error

	endedID int64
	endedAt time.Time
}

func (m *mockStudySessionRepo) Start(ctx context.Context, userID string, dictionaryID int64, startedAt time.Time) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	return m.startID, nil
}

func (m *mockStudySessionRepo) End(ctx context.Context, sessionID int64, userID string, dictionaryID int64, endedAt time.Time) error {
	if m.err != nil {
		return m.err
	}
	m.endedID = sessionID
	m.endedAt = endedAt
	return nil
}

// mockStudyCharacterRepo is a mock implementation of StudyCharacterRepository
type mockStudyCharacterRepo struct {
	char *models.Character
	err  error
}

func (m *mockStudyCharacterRepo) GetByHanzi(ctx context.Context, dictionaryID int64, hanzi string) (*models.Character, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.char, nil
}

// setupStudyService wires a study service over mocks with a pinned clock
func setupStudyService(t *testing.T, recordRepo *mockStudyRecordRepo, sessionRepo *mockStudySessionRepo, dictRepo *mockDictionaryRepo, charRepo *mockStudyCharacterRepo, now time.Time) *studyService {
	t.Helper()
	svc := NewStudyService(recordRepo, sessionRepo, dictRepo, charRepo, testLogger(t))
	svc.now = func() time.Time { return now }
	return svc
}

func ownedDict() *models.Dictionary {
	return &models.Dictionary{ID: 1, OwnerID: "alice", Name: "HSK 1", Visibility: models.VisibilityPrivate}
}

func TestStudyService_GetQueue(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		userID        string
		dictRepo      *mockDictionaryRepo
		recordRepo    *mockStudyRecordRepo
		expectedError error
		expectedCount int
	}{
		{
			name:     "unseen characters precede due ones",
			userID:   "alice",
			dictRepo: &mockDictionaryRepo{dict: ownedDict()},
			recordRepo: &mockStudyRecordRepo{
				items: []models.QueueItem{
					{Hanzi: "好", Pinyin: "hao3", IsNew: true},
					{Hanzi: "水", Pinyin: "shui3", DueAt: &now},
				},
			},
			expectedCount: 2,
		},
		{
			name:          "unknown dictionary",
			userID:        "alice",
			dictRepo:      &mockDictionaryRepo{},
			recordRepo:    &mockStudyRecordRepo{},
			expectedError: ErrNotFound,
		},
		{
			name:          "private dictionary of someone else",
			userID:        "bob",
			dictRepo:      &mockDictionaryRepo{dict: ownedDict()},
			recordRepo:    &mockStudyRecordRepo{},
			expectedError: ErrForbidden,
		},
		{
			name:     "public dictionary readable by anyone",
			userID:   "bob",
			dictRepo: &mockDictionaryRepo{dict: &models.Dictionary{ID: 1, OwnerID: "alice", Visibility: models.VisibilityPublic}},
			recordRepo: &mockStudyRecordRepo{
				items: []models.QueueItem{{Hanzi: "好", Pinyin: "hao3", IsNew: true}},
			},
			expectedCount: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := setupStudyService(t, tt.recordRepo, &mockStudySessionRepo{}, tt.dictRepo, &mockStudyCharacterRepo{}, now)

			items, err := svc.GetQueue(context.Background(), tt.userID, 1)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, items)
				return
			}

			assert.NoError(t, err)
			assert.Len(t, items, tt.expectedCount)
		})
	}
}

func TestStudyService_SubmitReview(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	char := &models.Character{ID: 7, DictionaryID: 1, Hanzi: "好", Pinyin: "hao3"}

	tests := []struct {
		name          string
		req           models.ReviewRequest
		recordRepo    *mockStudyRecordRepo
		charRepo      *mockStudyCharacterRepo
		expectedError error
		verify        func(t *testing.T, result *models.ReviewResult, upserted *models.StudyRecord)
	}{
		{
			name:       "first successful review bootstraps the 2.5 state",
			req:        models.ReviewRequest{Hanzi: "好", Rating: 5},
			recordRepo: &mockStudyRecordRepo{},
			charRepo:   &mockStudyCharacterRepo{char: char},
			verify: func(t *testing.T, result *models.ReviewResult, upserted *models.StudyRecord) {
				assert.InDelta(t, 2.6, result.EaseFactor, 1e-9)
				assert.Equal(t, 1, result.Interval)
				assert.Equal(t, now.Add(24*time.Hour), result.NextReviewAt)

				require.NotNil(t, upserted)
				assert.Equal(t, 1, upserted.Repetitions)
				assert.Equal(t, 5, upserted.LastRating)
				assert.Equal(t, now, upserted.LastReviewedAt)
			},
		},
		{
			name: "second success schedules six days out",
			req:  models.ReviewRequest{Hanzi: "好", Rating: 4},
			recordRepo: &mockStudyRecordRepo{
				record: &models.StudyRecord{
					UserID: "alice", DictionaryID: 1, CharacterID: 7,
					EaseFactor: 2.6, Interval: 1, Repetitions: 1,
				},
			},
			charRepo: &mockStudyCharacterRepo{char: char},
			verify: func(t *testing.T, result *models.ReviewResult, upserted *models.StudyRecord) {
				assert.Equal(t, 6, result.Interval)
				assert.Equal(t, now.Add(6*24*time.Hour), result.NextReviewAt)
				assert.Equal(t, 2, upserted.Repetitions)
			},
		},
		{
			name: "failure resets the streak but keeps the eased penalty",
			req:  models.ReviewRequest{Hanzi: "好", Rating: 2},
			recordRepo: &mockStudyRecordRepo{
				record: &models.StudyRecord{
					UserID: "alice", DictionaryID: 1, CharacterID: 7,
					EaseFactor: 2.5, Interval: 6, Repetitions: 2,
				},
			},
			charRepo: &mockStudyCharacterRepo{char: char},
			verify: func(t *testing.T, result *models.ReviewResult, upserted *models.StudyRecord) {
				assert.Equal(t, 1, result.Interval)
				assert.InDelta(t, 2.18, result.EaseFactor, 1e-9)
				assert.Equal(t, 0, upserted.Repetitions)
				assert.Equal(t, now.Add(24*time.Hour), result.NextReviewAt)
			},
		},
		{
			name: "explicit reviewedAt anchors the schedule",
			req: models.ReviewRequest{
				Hanzi:      "好",
				Rating:     5,
				ReviewedAt: "2026-02-28T08:30:00Z",
			},
			recordRepo: &mockStudyRecordRepo{},
			charRepo:   &mockStudyCharacterRepo{char: char},
			verify: func(t *testing.T, result *models.ReviewResult, upserted *models.StudyRecord) {
				reviewedAt := time.Date(2026, 2, 28, 8, 30, 0, 0, time.UTC)
				assert.Equal(t, reviewedAt, upserted.LastReviewedAt)
				assert.Equal(t, reviewedAt.Add(24*time.Hour), result.NextReviewAt)
			},
		},
		{
			name: "naive reviewedAt interpreted as UTC",
			req: models.ReviewRequest{
				Hanzi:      "好",
				Rating:     5,
				ReviewedAt: "2026-02-28T08:30:00",
			},
			recordRepo: &mockStudyRecordRepo{},
			charRepo:   &mockStudyCharacterRepo{char: char},
			verify: func(t *testing.T, result *models.ReviewResult, upserted *models.StudyRecord) {
				assert.Equal(t, time.Date(2026, 2, 28, 8, 30, 0, 0, time.UTC), upserted.LastReviewedAt)
			},
		},
		{
			name: "garbage reviewedAt falls back to now",
			req: models.ReviewRequest{
				Hanzi:      "好",
				Rating:     5,
				ReviewedAt: "yesterday",
			},
			recordRepo: &mockStudyRecordRepo{},
			charRepo:   &mockStudyCharacterRepo{char: char},
			verify: func(t *testing.T, result *models.ReviewResult, upserted *models.StudyRecord) {
				assert.Equal(t, now, upserted.LastReviewedAt)
			},
		},
		{
			name:          "rating above five rejected",
			req:           models.ReviewRequest{Hanzi: "好", Rating: 6},
			recordRepo:    &mockStudyRecordRepo{},
			charRepo:      &mockStudyCharacterRepo{char: char},
			expectedError: ErrInvalidRating,
		},
		{
			name:          "negative rating rejected",
			req:           models.ReviewRequest{Hanzi: "好", Rating: -1},
			recordRepo:    &mockStudyRecordRepo{},
			charRepo:      &mockStudyCharacterRepo{char: char},
			expectedError: ErrInvalidRating,
		},
		{
			name:          "character not in dictionary",
			req:           models.ReviewRequest{Hanzi: "水", Rating: 5},
			recordRepo:    &mockStudyRecordRepo{},
			charRepo:      &mockStudyCharacterRepo{},
			expectedError: ErrNotFound,
		},
		{
			name:          "upsert failure surfaces",
			req:           models.ReviewRequest{Hanzi: "好", Rating: 5},
			recordRepo:    &mockStudyRecordRepo{err: errors.New("database error")},
			charRepo:      &mockStudyCharacterRepo{char: char},
			expectedError: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dictRepo := &mockDictionaryRepo{dict: ownedDict()}
			svc := setupStudyService(t, tt.recordRepo, &mockStudySessionRepo{}, dictRepo, tt.charRepo, now)

			result, err := svc.SubmitReview(context.Background(), "alice", 1, tt.req)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, result)
				return
			}
			if tt.verify == nil {
				assert.Error(t, err)
				assert.Nil(t, result)
				return
			}

			assert.NoError(t, err)
			require.NotNil(t, result)
			tt.verify(t, result, tt.recordRepo.upserted)
		})
	}
}

func TestStudyService_SubmitReview_ConcurrentSameCharacter(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	char := &models.Character{ID: 7, DictionaryID: 1, Hanzi: "好", Pinyin: "hao3"}

	recordRepo := &mockStudyRecordRepo{}
	dictRepo := &mockDictionaryRepo{dict: ownedDict()}
	svc := setupStudyService(t, recordRepo, &mockStudySessionRepo{}, dictRepo, &mockStudyCharacterRepo{char: char}, now)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.SubmitReview(context.Background(), "alice", 1, models.ReviewRequest{Hanzi: "好", Rating: 5})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	require.NotNil(t, recordRepo.upserted)
	assert.Equal(t, 5, recordRepo.upserted.LastRating)
}

func TestStudyService_Sessions(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("start returns the generated ID and clock time", func(t *testing.T) {
		sessionRepo := &mockStudySessionRepo{startID: 5}
		svc := setupStudyService(t, &mockStudyRecordRepo{}, sessionRepo, &mockDictionaryRepo{dict: ownedDict()}, &mockStudyCharacterRepo{}, now)

		result, err := svc.StartSession(context.Background(), "alice", 1)

		require.NoError(t, err)
		assert.Equal(t, int64(5), result.SessionID)
		assert.Equal(t, now, result.StartedAt)
	})

	t.Run("start on forbidden dictionary", func(t *testing.T) {
		svc := setupStudyService(t, &mockStudyRecordRepo{}, &mockStudySessionRepo{}, &mockDictionaryRepo{dict: ownedDict()}, &mockStudyCharacterRepo{}, now)

		_, err := svc.StartSession(context.Background(), "bob", 1)

		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("end uses the supplied timestamp", func(t *testing.T) {
		sessionRepo := &mockStudySessionRepo{}
		svc := setupStudyService(t, &mockStudyRecordRepo{}, sessionRepo, &mockDictionaryRepo{dict: ownedDict()}, &mockStudyCharacterRepo{}, now)

		result, err := svc.EndSession(context.Background(), "alice", 1, models.EndSessionRequest{
			SessionID: 5,
			EndedAt:   "2026-03-01T10:30:00Z",
		})

		require.NoError(t, err)
		endedAt := time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)
		assert.Equal(t, int64(5), result.SessionID)
		assert.Equal(t, endedAt, result.EndedAt)
		assert.Equal(t, endedAt, sessionRepo.endedAt)
	})

	t.Run("end without timestamp uses the clock", func(t *testing.T) {
		sessionRepo := &mockStudySessionRepo{}
		svc := setupStudyService(t, &mockStudyRecordRepo{}, sessionRepo, &mockDictionaryRepo{dict: ownedDict()}, &mockStudyCharacterRepo{}, now)

		result, err := svc.EndSession(context.Background(), "alice", 1, models.EndSessionRequest{SessionID: 5})

		require.NoError(t, err)
		assert.Equal(t, now, result.EndedAt)
	})
}

func TestParseTimestamp(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	tests := []struct {
		name     string
		value    string
		expected time.Time
	}{
		{
			name:     "empty falls back to now",
			value:    "",
			expected: now,
		},
		{
			name:     "rfc3339 with offset normalized to UTC",
			value:    "2026-02-28T09:30:00+01:00",
			expected: time.Date(2026, 2, 28, 8, 30, 0, 0, time.UTC),
		},
		{
			name:     "rfc3339 with fractional seconds",
			value:    "2026-02-28T08:30:00.125Z",
			expected: time.Date(2026, 2, 28, 8, 30, 0, 125000000, time.UTC),
		},
		{
			name:     "naive timestamp interpreted as UTC",
			value:    "2026-02-28T08:30:00",
			expected: time.Date(2026, 2, 28, 8, 30, 0, 0, time.UTC),
		},
		{
			name:     "naive with microseconds",
			value:    "2026-02-28T08:30:00.000125",
			expected: time.Date(2026, 2, 28, 8, 30, 0, 125000, time.UTC),
		},
		{
			name:     "garbage falls back to now",
			value:    "not-a-time",
			expected: now,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseTimestamp(tt.value, clock))
		})
	}
}

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/hanzicards/backend/internal/models"
	"github.com/hanzicards/backend/internal/scheduler"
	"go.uber.org/zap"
)

// StudyRecordRepository is the interface that wraps methods for StudyRecord table data access
type StudyRecordRepository interface {
	// Get retrieves the study record for one (user, dictionary, character) triple
	//
	// Returns nil without error when no record exists yet.
	Get(ctx context.Context, userID string, dictionaryID, characterID int64) (*models.StudyRecord, error)
	// Upsert atomically inserts or replaces the record for its key triple
	Upsert(ctx context.Context, record *models.StudyRecord) error
	// ListDue retrieves the due queue: unseen characters first, then due
	// characters ordered by ascending due time
	ListDue(ctx context.Context, userID string, dictionaryID int64, now time.Time) ([]models.QueueItem, error)
}

// StudySessionRepository is the interface that wraps methods for StudySession table data access
type StudySessionRepository interface {
	// Start opens a session and returns its generated ID
	Start(ctx context.Context, userID string, dictionaryID int64, startedAt time.Time) (int64, error)
	// End closes the session matching (sessionID, userID, dictionaryID);
	// a mismatch matches zero rows and is not an error
	End(ctx context.Context, sessionID int64, userID string, dictionaryID int64, endedAt time.Time) error
}

// StudyDictionaryRepository is the interface the study service uses for permission checks
type StudyDictionaryRepository interface {
	// GetByID retrieves a dictionary; nil without error when absent
	GetByID(ctx context.Context, dictionaryID int64) (*models.Dictionary, error)
}

// StudyCharacterRepository is the interface the study service uses to resolve glyphs
type StudyCharacterRepository interface {
	// GetByHanzi retrieves a character within a dictionary; nil without error when absent
	GetByHanzi(ctx context.Context, dictionaryID int64, hanzi string) (*models.Character, error)
}

// studyService implements StudyService
type studyService struct {
	recordRepo  StudyRecordRepository
	sessionRepo StudySessionRepository
	dictRepo    StudyDictionaryRepository
	charRepo    StudyCharacterRepository
	reviewLocks *keyedMutex
	now         func() time.Time
	logger      *zap.Logger
}

// NewStudyService creates a new study service
func NewStudyService(
	recordRepo StudyRecordRepository,
	sessionRepo StudySessionRepository,
	dictRepo StudyDictionaryRepository,
	charRepo StudyCharacterRepository,
	logger *zap.Logger,
) *studyService {
	return &studyService{
		recordRepo:  recordRepo,
		sessionRepo: sessionRepo,
		dictRepo:    dictRepo,
		charRepo:    charRepo,
		reviewLocks: newKeyedMutex(),
		now:         func() time.Time { return time.Now().UTC() },
		logger:      logger,
	}
}

// checkRead loads the dictionary and verifies the user may read it
func (s *studyService) checkRead(ctx context.Context, userID string, dictionaryID int64) error {
	dict, err := s.dictRepo.GetByID(ctx, dictionaryID)
	if err != nil {
		s.logger.Error("failed to load dictionary", zap.Error(err), zap.Int64("dictionary_id", dictionaryID))
		return fmt.Errorf("failed to load dictionary: %w", err)
	}
	if dict == nil {
		return ErrNotFound
	}
	if !dict.CanRead(userID) {
		return ErrForbidden
	}
	return nil
}

// GetQueue retrieves the ordered due queue for a user and dictionary.
// The queue is recomputed on every call; due status is purely a function
// of wall-clock time.
func (s *studyService) GetQueue(ctx context.Context, userID string, dictionaryID int64) ([]models.QueueItem, error) {
	if err := s.checkRead(ctx, userID, dictionaryID); err != nil {
		return nil, err
	}

	items, err := s.recordRepo.ListDue(ctx, userID, dictionaryID, s.now())
	if err != nil {
		s.logger.Error("failed to list due queue", zap.Error(err))
		return nil, fmt.Errorf("failed to list due queue: %w", err)
	}

	return items, nil
}

// SubmitReview applies one review: it validates the rating, resolves the
// character, loads the prior state (or the 2.5/0/0 bootstrap), runs SM-2
// and persists the result atomically.
//
// Concurrent reviews of the same (user, dictionary, hanzi) are serialized
// across load, compute and upsert so no update is lost.
func (s *studyService) SubmitReview(ctx context.Context, userID string, dictionaryID int64, req models.ReviewRequest) (*models.ReviewResult, error) {
	if req.Rating < scheduler.MinRating || req.Rating > scheduler.MaxRating {
		return nil, ErrInvalidRating
	}

	if err := s.checkRead(ctx, userID, dictionaryID); err != nil {
		return nil, err
	}

	char, err := s.charRepo.GetByHanzi(ctx, dictionaryID, req.Hanzi)
	if err != nil {
		s.logger.Error("failed to resolve character", zap.Error(err), zap.String("hanzi", req.Hanzi))
		return nil, fmt.Errorf("failed to resolve character: %w", err)
	}
	if char == nil {
		return nil, ErrNotFound
	}

	reviewedAt := parseTimestamp(req.ReviewedAt, s.now)

	unlock := s.reviewLocks.Lock(fmt.Sprintf("%s/%d/%d", userID, dictionaryID, char.ID))
	defer unlock()

	prior := scheduler.NewState()
	record, err := s.recordRepo.Get(ctx, userID, dictionaryID, char.ID)
	if err != nil {
		s.logger.Error("failed to load study record", zap.Error(err))
		return nil, fmt.Errorf("failed to load study record: %w", err)
	}
	if record != nil {
		prior = scheduler.State{
			EaseFactor:  record.EaseFactor,
			Interval:    record.Interval,
			Repetitions: record.Repetitions,
		}
	}

	result := scheduler.Compute(prior, req.Rating, reviewedAt)

	err = s.recordRepo.Upsert(ctx, &models.StudyRecord{
		UserID:         userID,
		DictionaryID:   dictionaryID,
		CharacterID:    char.ID,
		EaseFactor:     result.EaseFactor,
		Interval:       result.Interval,
		Repetitions:    result.Repetitions,
		LastReviewedAt: reviewedAt,
		NextReviewAt:   result.NextReviewAt,
		LastRating:     req.Rating,
	})
	if err != nil {
		s.logger.Error("failed to persist study record", zap.Error(err))
		return nil, fmt.Errorf("failed to persist study record: %w", err)
	}

	return &models.ReviewResult{
		NextReviewAt: result.NextReviewAt,
		Interval:     result.Interval,
		EaseFactor:   result.EaseFactor,
	}, nil
}

// StartSession opens a study session for a user and dictionary
func (s *studyService) StartSession(ctx context.Context, userID string, dictionaryID int64) (*models.SessionStartResult, error) {
	if err := s.checkRead(ctx, userID, dictionaryID); err != nil {
		return nil, err
	}

	startedAt := s.now()
	sessionID, err := s.sessionRepo.Start(ctx, userID, dictionaryID, startedAt)
	if err != nil {
		s.logger.Error("failed to start session", zap.Error(err))
		return nil, fmt.Errorf("failed to start session: %w", err)
	}

	return &models.SessionStartResult{SessionID: sessionID, StartedAt: startedAt}, nil
}

// EndSession closes a study session. Closing an already-closed session
// overwrites its end time; an unknown session ID is a silent no-op.
func (s *studyService) EndSession(ctx context.Context, userID string, dictionaryID int64, req models.EndSessionRequest) (*models.SessionEndResult, error) {
	if err := s.checkRead(ctx, userID, dictionaryID); err != nil {
		return nil, err
	}

	endedAt := parseTimestamp(req.EndedAt, s.now)
	if err := s.sessionRepo.End(ctx, req.SessionID, userID, dictionaryID, endedAt); err != nil {
		s.logger.Error("failed to end session", zap.Error(err), zap.Int64("session_id", req.SessionID))
		return nil, fmt.Errorf("failed to end session: %w", err)
	}

	return &models.SessionEndResult{SessionID: req.SessionID, EndedAt: endedAt}, nil
}

// timestampLayouts are tried in order: RFC 3339 with an offset (fractional
// seconds optional), then naive timestamps interpreted as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
}

// parseTimestamp parses a client-supplied timestamp leniently. Empty or
// unparseable input falls back to the current time instead of failing.
func parseTimestamp(value string, now func() time.Time) time.Time {
	if value == "" {
		return now()
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t.UTC()
		}
	}
	return now()
}

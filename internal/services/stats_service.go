package services

import (
	"context"
	"fmt"
	"time"

	"github.com/hanzicards/backend/internal/models"
	"go.uber.org/zap"
)

// StatsCharacterRepository is the interface the stats service uses for character counts
type StatsCharacterRepository interface {
	// CountByDictionary counts the characters in a dictionary
	CountByDictionary(ctx context.Context, dictionaryID int64) (int, error)
}

// StatsRecordRepository is the interface the stats service uses for progress counts
type StatsRecordRepository interface {
	// CountKnown counts the characters with repetitions > 0
	CountKnown(ctx context.Context, userID string, dictionaryID int64) (int, error)
	// CountDue counts the reviewed characters due at or before now
	CountDue(ctx context.Context, userID string, dictionaryID int64, now time.Time) (int, error)
}

// StatsSessionRepository is the interface the stats service uses for study time
type StatsSessionRepository interface {
	// TotalSeconds sums the duration of all ended sessions in whole seconds
	TotalSeconds(ctx context.Context, userID string, dictionaryID int64) (int64, error)
}

// statsService implements StatsService
type statsService struct {
	dictRepo    StudyDictionaryRepository
	charRepo    StatsCharacterRepository
	recordRepo  StatsRecordRepository
	sessionRepo StatsSessionRepository
	now         func() time.Time
	logger      *zap.Logger
}

// NewStatsService creates a new stats service
func NewStatsService(
	dictRepo StudyDictionaryRepository,
	charRepo StatsCharacterRepository,
	recordRepo StatsRecordRepository,
	sessionRepo StatsSessionRepository,
	logger *zap.Logger,
) *statsService {
	return &statsService{
		dictRepo:    dictRepo,
		charRepo:    charRepo,
		recordRepo:  recordRepo,
		sessionRepo: sessionRepo,
		now:         func() time.Time { return time.Now().UTC() },
		logger:      logger,
	}
}

// Summary aggregates a user's progress in one dictionary: character total,
// known/unknown split, due-now count and accumulated study seconds.
func (s *statsService) Summary(ctx context.Context, userID string, dictionaryID int64) (*models.StatsSummary, error) {
	dict, err := s.dictRepo.GetByID(ctx, dictionaryID)
	if err != nil {
		s.logger.Error("failed to load dictionary", zap.Error(err), zap.Int64("dictionary_id", dictionaryID))
		return nil, fmt.Errorf("failed to load dictionary: %w", err)
	}
	if dict == nil {
		return nil, ErrNotFound
	}
	if !dict.CanRead(userID) {
		return nil, ErrForbidden
	}

	total, err := s.charRepo.CountByDictionary(ctx, dictionaryID)
	if err != nil {
		s.logger.Error("failed to count characters", zap.Error(err))
		return nil, fmt.Errorf("failed to count characters: %w", err)
	}

	known, err := s.recordRepo.CountKnown(ctx, userID, dictionaryID)
	if err != nil {
		s.logger.Error("failed to count known characters", zap.Error(err))
		return nil, fmt.Errorf("failed to count known characters: %w", err)
	}

	due, err := s.recordRepo.CountDue(ctx, userID, dictionaryID, s.now())
	if err != nil {
		s.logger.Error("failed to count due characters", zap.Error(err))
		return nil, fmt.Errorf("failed to count due characters: %w", err)
	}

	seconds, err := s.sessionRepo.TotalSeconds(ctx, userID, dictionaryID)
	if err != nil {
		s.logger.Error("failed to sum study time", zap.Error(err))
		return nil, fmt.Errorf("failed to sum study time: %w", err)
	}

	unknown := total - known
	if unknown < 0 {
		unknown = 0
	}

	return &models.StatsSummary{
		Total:          total,
		Known:          known,
		Unknown:        unknown,
		DueToday:       due,
		StudyTimeTotal: seconds,
	}, nil
}

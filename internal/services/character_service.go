package services

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/hanzicards/backend/internal/models"
	"github.com/mozillazg/go-pinyin"
	"go.uber.org/zap"
)

// CharacterRepository is the interface that wraps methods for Character table data access
type CharacterRepository interface {
	// GetByHanzi retrieves a character within a dictionary; nil without error when absent
	GetByHanzi(ctx context.Context, dictionaryID int64, hanzi string) (*models.Character, error)
	// Insert adds a character, skipping glyphs already present; returns
	// true when a row was actually inserted
	Insert(ctx context.Context, dictionaryID int64, hanzi, pinyin string, now time.Time) (bool, error)
	// List retrieves all characters of a dictionary ordered by glyph
	List(ctx context.Context, dictionaryID int64) ([]models.CharacterListItem, error)
}

// CommonWordRepository is the interface that wraps the common-word index lookup
type CommonWordRepository interface {
	// GetByHanzi retrieves the most frequent words containing a character
	GetByHanzi(ctx context.Context, hanzi string, limit int) ([]models.CommonWord, error)
}

// characterService implements CharacterService
type characterService struct {
	charRepo       CharacterRepository
	wordRepo       CommonWordRepository
	dictRepo       StudyDictionaryRepository
	maxCommonWords int
	pinyinArgs     pinyin.Args
	now            func() time.Time
	logger         *zap.Logger
}

// NewCharacterService creates a new character service.
// maxCommonWords caps the common-word enrichment per character.
func NewCharacterService(
	charRepo CharacterRepository,
	wordRepo CommonWordRepository,
	dictRepo StudyDictionaryRepository,
	maxCommonWords int,
	logger *zap.Logger,
) *characterService {
	args := pinyin.NewArgs()
	args.Style = pinyin.Tone3

	return &characterService{
		charRepo:       charRepo,
		wordRepo:       wordRepo,
		dictRepo:       dictRepo,
		maxCommonWords: maxCommonWords,
		pinyinArgs:     args,
		now:            func() time.Time { return time.Now().UTC() },
		logger:         logger,
	}
}

// Import adds hanzi to a dictionary. Only the owner may import. Entries
// that are not a single CJK ideograph, or already present, are counted as
// skipped rather than failing the batch.
func (s *characterService) Import(ctx context.Context, userID string, dictionaryID int64, items []string) (*models.ImportCharactersResult, error) {
	dict, err := s.dictRepo.GetByID(ctx, dictionaryID)
	if err != nil {
		s.logger.Error("failed to load dictionary", zap.Error(err))
		return nil, fmt.Errorf("failed to load dictionary: %w", err)
	}
	if dict == nil {
		return nil, ErrNotFound
	}
	if !dict.CanWrite(userID) {
		return nil, ErrForbidden
	}

	result := &models.ImportCharactersResult{}
	for _, hanzi := range items {
		if !isSingleHanzi(hanzi) {
			result.Skipped++
			continue
		}
		inserted, err := s.charRepo.Insert(ctx, dictionaryID, hanzi, s.toPinyin(hanzi), s.now())
		if err != nil {
			s.logger.Error("failed to import character", zap.Error(err), zap.String("hanzi", hanzi))
			return nil, fmt.Errorf("failed to import character: %w", err)
		}
		if inserted {
			result.Imported++
		} else {
			result.Skipped++
		}
	}

	return result, nil
}

// List retrieves all characters of a dictionary the user may read
func (s *characterService) List(ctx context.Context, userID string, dictionaryID int64) ([]models.CharacterListItem, error) {
	dict, err := s.dictRepo.GetByID(ctx, dictionaryID)
	if err != nil {
		s.logger.Error("failed to load dictionary", zap.Error(err))
		return nil, fmt.Errorf("failed to load dictionary: %w", err)
	}
	if dict == nil {
		return nil, ErrNotFound
	}
	if !dict.CanRead(userID) {
		return nil, ErrForbidden
	}

	items, err := s.charRepo.List(ctx, dictionaryID)
	if err != nil {
		s.logger.Error("failed to list characters", zap.Error(err))
		return nil, fmt.Errorf("failed to list characters: %w", err)
	}

	return items, nil
}

// Info retrieves one character with its common-word enrichment
func (s *characterService) Info(ctx context.Context, userID string, dictionaryID int64, hanzi string) (*models.CharacterInfo, error) {
	dict, err := s.dictRepo.GetByID(ctx, dictionaryID)
	if err != nil {
		s.logger.Error("failed to load dictionary", zap.Error(err))
		return nil, fmt.Errorf("failed to load dictionary: %w", err)
	}
	if dict == nil {
		return nil, ErrNotFound
	}
	if !dict.CanRead(userID) {
		return nil, ErrForbidden
	}

	char, err := s.charRepo.GetByHanzi(ctx, dictionaryID, hanzi)
	if err != nil {
		s.logger.Error("failed to load character", zap.Error(err), zap.String("hanzi", hanzi))
		return nil, fmt.Errorf("failed to load character: %w", err)
	}
	if char == nil {
		return nil, ErrNotFound
	}

	words, err := s.wordRepo.GetByHanzi(ctx, hanzi, s.maxCommonWords)
	if err != nil {
		s.logger.Error("failed to load common words", zap.Error(err), zap.String("hanzi", hanzi))
		return nil, fmt.Errorf("failed to load common words: %w", err)
	}

	return &models.CharacterInfo{
		Hanzi:       char.Hanzi,
		Pinyin:      char.Pinyin,
		CommonWords: words,
	}, nil
}

// toPinyin renders a glyph's numbered-tone pinyin reading
func (s *characterService) toPinyin(hanzi string) string {
	readings := pinyin.Pinyin(hanzi, s.pinyinArgs)
	parts := make([]string, 0, len(readings))
	for _, reading := range readings {
		if len(reading) > 0 {
			parts = append(parts, reading[0])
		}
	}
	return strings.Join(parts, " ")
}

// isSingleHanzi reports whether the string is exactly one CJK unified ideograph
func isSingleHanzi(s string) bool {
	r, size := utf8.DecodeRuneInString(s)
	return size == len(s) && r >= 0x4e00 && r <= 0x9fff
}

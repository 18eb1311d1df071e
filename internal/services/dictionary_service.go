package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/hanzicards/backend/internal/models"
	"go.uber.org/zap"
)

// defaultDictionaryName is created for users who own no dictionary yet
const defaultDictionaryName = "我的字库"

// mysqlDuplicateEntry is the MySQL error number for unique key violations
const mysqlDuplicateEntry = 1062

// DictionaryRepository is the interface that wraps methods for Dictionary table data access
type DictionaryRepository interface {
	// GetByID retrieves a dictionary; nil without error when absent
	GetByID(ctx context.Context, dictionaryID int64) (*models.Dictionary, error)
	// ListVisible retrieves the user's own dictionaries plus public ones,
	// own first, then by name
	ListVisible(ctx context.Context, userID string) ([]models.Dictionary, error)
	// CountByOwner counts the dictionaries a user owns
	CountByOwner(ctx context.Context, userID string) (int, error)
	// Create inserts a dictionary and returns its generated ID
	Create(ctx context.Context, ownerID, name string, visibility models.Visibility, now time.Time) (int64, error)
	// Update changes a dictionary's name and visibility
	Update(ctx context.Context, dictionaryID int64, name string, visibility models.Visibility, now time.Time) error
	// Delete removes a dictionary and everything scoped to it
	Delete(ctx context.Context, dictionaryID int64) error
}

// dictionaryService implements DictionaryService
type dictionaryService struct {
	repo   DictionaryRepository
	now    func() time.Time
	logger *zap.Logger
}

// NewDictionaryService creates a new dictionary service
func NewDictionaryService(repo DictionaryRepository, logger *zap.Logger) *dictionaryService {
	return &dictionaryService{
		repo:   repo,
		now:    func() time.Time { return time.Now().UTC() },
		logger: logger,
	}
}

// List retrieves the dictionaries visible to a user. A user who owns no
// dictionary yet gets a private default one created first, so every
// account always has somewhere to import characters.
func (s *dictionaryService) List(ctx context.Context, userID string) ([]models.DictionaryItem, error) {
	owned, err := s.repo.CountByOwner(ctx, userID)
	if err != nil {
		s.logger.Error("failed to count dictionaries", zap.Error(err))
		return nil, fmt.Errorf("failed to count dictionaries: %w", err)
	}
	if owned == 0 {
		if _, err := s.repo.Create(ctx, userID, defaultDictionaryName, models.VisibilityPrivate, s.now()); err != nil {
			s.logger.Error("failed to create default dictionary", zap.Error(err))
			return nil, fmt.Errorf("failed to create default dictionary: %w", err)
		}
	}

	dicts, err := s.repo.ListVisible(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list dictionaries", zap.Error(err))
		return nil, fmt.Errorf("failed to list dictionaries: %w", err)
	}

	items := make([]models.DictionaryItem, 0, len(dicts))
	for _, dict := range dicts {
		items = append(items, models.DictionaryItem{
			ID:         dict.ID,
			Name:       dict.Name,
			Visibility: dict.Visibility,
			OwnerID:    dict.OwnerID,
			IsOwner:    dict.OwnerID == userID,
		})
	}

	return items, nil
}

// Create adds a new dictionary owned by the user
func (s *dictionaryService) Create(ctx context.Context, userID string, req models.CreateDictionaryRequest) (*models.DictionaryItem, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("dictionary name cannot be empty")
	}
	visibility := req.Visibility
	if visibility == "" {
		visibility = models.VisibilityPrivate
	}
	if visibility != models.VisibilityPrivate && visibility != models.VisibilityPublic {
		return nil, fmt.Errorf("invalid visibility: %s", visibility)
	}

	dictionaryID, err := s.repo.Create(ctx, userID, req.Name, visibility, s.now())
	if err != nil {
		if isDuplicateEntry(err) {
			return nil, ErrAlreadyExists
		}
		s.logger.Error("failed to create dictionary", zap.Error(err))
		return nil, fmt.Errorf("failed to create dictionary: %w", err)
	}

	return &models.DictionaryItem{
		ID:         dictionaryID,
		Name:       req.Name,
		Visibility: visibility,
		OwnerID:    userID,
		IsOwner:    true,
	}, nil
}

// Get retrieves one dictionary the user may read
func (s *dictionaryService) Get(ctx context.Context, userID string, dictionaryID int64) (*models.DictionaryItem, error) {
	dict, err := s.repo.GetByID(ctx, dictionaryID)
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

	return &models.DictionaryItem{
		ID:         dict.ID,
		Name:       dict.Name,
		Visibility: dict.Visibility,
		OwnerID:    dict.OwnerID,
		IsOwner:    dict.OwnerID == userID,
	}, nil
}

// Update changes a dictionary's name or visibility. Only the owner may update.
// Omitted fields keep their current value.
func (s *dictionaryService) Update(ctx context.Context, userID string, dictionaryID int64, req models.UpdateDictionaryRequest) (*models.DictionaryItem, error) {
	dict, err := s.repo.GetByID(ctx, dictionaryID)
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

	name := dict.Name
	if req.Name != "" {
		name = req.Name
	}
	visibility := dict.Visibility
	if req.Visibility != "" {
		if req.Visibility != models.VisibilityPrivate && req.Visibility != models.VisibilityPublic {
			return nil, fmt.Errorf("invalid visibility: %s", req.Visibility)
		}
		visibility = req.Visibility
	}

	if err := s.repo.Update(ctx, dictionaryID, name, visibility, s.now()); err != nil {
		if isDuplicateEntry(err) {
			return nil, ErrAlreadyExists
		}
		s.logger.Error("failed to update dictionary", zap.Error(err))
		return nil, fmt.Errorf("failed to update dictionary: %w", err)
	}

	return &models.DictionaryItem{
		ID:         dictionaryID,
		Name:       name,
		Visibility: visibility,
		OwnerID:    dict.OwnerID,
		IsOwner:    true,
	}, nil
}

// Delete removes a dictionary and all study state scoped to it.
// Only the owner may delete.
func (s *dictionaryService) Delete(ctx context.Context, userID string, dictionaryID int64) error {
	dict, err := s.repo.GetByID(ctx, dictionaryID)
	if err != nil {
		s.logger.Error("failed to load dictionary", zap.Error(err))
		return fmt.Errorf("failed to load dictionary: %w", err)
	}
	if dict == nil {
		return ErrNotFound
	}
	if !dict.CanWrite(userID) {
		return ErrForbidden
	}

	if err := s.repo.Delete(ctx, dictionaryID); err != nil {
		s.logger.Error("failed to delete dictionary", zap.Error(err))
		return fmt.Errorf("failed to delete dictionary: %w", err)
	}

	return nil
}

// isDuplicateEntry reports whether err is a MySQL unique key violation
func isDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry
}

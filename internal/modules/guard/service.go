package guard

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"hostal/internal/domain"
	"hostal/internal/repository"
)

var (
	ErrValidation    = errors.New("validation error")
	ErrAlreadyListed = errors.New("document is already blacklisted")
	ErrNotListed     = errors.New("document is not blacklisted")
)

// Service answers the check-in gate's yes/no question and manages the
// registry behind it.
type Service struct {
	db     *gorm.DB
	repo   *repository.BlacklistRepository
	logger zerolog.Logger
}

func NewService(db *gorm.DB, repo *repository.BlacklistRepository, logger zerolog.Logger) *Service {
	return &Service{db: db, repo: repo, logger: logger}
}

// IsBlocked reports whether the document holder may check in. When tx is
// non-nil the lookup joins the caller's transaction so a concurrent
// registry change cannot slip between the check and the booking insert.
func (s *Service) IsBlocked(ctx context.Context, tx *gorm.DB, documentNumber string) (bool, string, error) {
	db := tx
	if db == nil {
		db = s.db
	}

	var entry domain.BlacklistEntry
	err := db.WithContext(ctx).Where("document_number = ?", documentNumber).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, "", nil
	}
	if err != nil {
		return false, "", err
	}
	return true, entry.Reason, nil
}

func (s *Service) Add(ctx context.Context, entry *domain.BlacklistEntry) error {
	if entry.DocumentNumber == "" {
		return fmt.Errorf("%w: document_number is required", ErrValidation)
	}
	if entry.Reason == "" {
		return fmt.Errorf("%w: reason is required", ErrValidation)
	}

	existing, err := s.repo.FindByDocument(ctx, entry.DocumentNumber)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrAlreadyListed
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		return err
	}
	s.logger.Info().Str("document_number", entry.DocumentNumber).Msg("document blacklisted")
	return nil
}

func (s *Service) Remove(ctx context.Context, id int64) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotListed
	}
	return err
}

func (s *Service) List(ctx context.Context) ([]domain.BlacklistEntry, error) {
	return s.repo.List(ctx)
}

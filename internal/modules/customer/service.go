package customer

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"hostal/internal/domain"
	"hostal/internal/repository"
)

var (
	ErrValidation        = errors.New("validation error")
	ErrQueryTooShort     = errors.New("search query needs at least 3 characters")
	ErrDuplicateDocument = errors.New("a customer with this document already exists")
)

type Service struct {
	repo *repository.CustomerRepository
}

func NewService(repo *repository.CustomerRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Search(ctx context.Context, q string, limit int) ([]repository.CustomerSearchRow, error) {
	if len(q) < 3 {
		return nil, ErrQueryTooShort
	}
	return s.repo.Search(ctx, q, limit)
}

func (s *Service) Create(ctx context.Context, c *domain.Customer) error {
	if c.FullName == "" || c.DocumentNumber == "" {
		return fmt.Errorf("%w: full_name and document_number are required", ErrValidation)
	}

	existing, err := s.repo.GetByDocument(ctx, c.DocumentNumber)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if existing != nil {
		return ErrDuplicateDocument
	}
	return s.repo.Create(ctx, c)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByDocument(ctx context.Context, documentNumber string) (*domain.Customer, error) {
	return s.repo.GetByDocument(ctx, documentNumber)
}

package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"hostal/internal/domain"
)

type BlacklistRepository struct {
	db *gorm.DB
}

func NewBlacklistRepository(db *gorm.DB) *BlacklistRepository {
	return &BlacklistRepository{db: db}
}

// FindByDocument returns (nil, nil) when the document is not listed.
func (r *BlacklistRepository) FindByDocument(ctx context.Context, documentNumber string) (*domain.BlacklistEntry, error) {
	var e domain.BlacklistEntry
	err := r.db.WithContext(ctx).Where("document_number = ?", documentNumber).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *BlacklistRepository) Create(ctx context.Context, e *domain.BlacklistEntry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *BlacklistRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&domain.BlacklistEntry{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *BlacklistRepository) List(ctx context.Context) ([]domain.BlacklistEntry, error) {
	var entries []domain.BlacklistEntry
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

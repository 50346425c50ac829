package repository

import (
	"context"

	"gorm.io/gorm"

	"hostal/internal/domain"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	var p domain.Product
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

type ProductFilters struct {
	IsActive *bool
	Category string
}

func (r *ProductRepository) List(ctx context.Context, f ProductFilters) ([]domain.Product, error) {
	q := r.db.WithContext(ctx).Model(&domain.Product{})
	if f.IsActive != nil {
		q = q.Where("is_active = ?", *f.IsActive)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}

	var products []domain.Product
	if err := q.Order("category, name").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

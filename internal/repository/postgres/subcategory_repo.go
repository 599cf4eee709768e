package postgres

import (
	"context"

	"github.com/devprince/ecommerce-api/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type subcategoryRepository struct {
	db *gorm.DB
}

func NewSubcategoryRepository(db *gorm.DB) *subcategoryRepository {
	return &subcategoryRepository{db: db}
}

func (r *subcategoryRepository) Create(ctx context.Context, subcategory *domain.Subcategory) error {
	return r.db.WithContext(ctx).Create(subcategory).Error
}

func (r *subcategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Subcategory, error) {
	var subcategory domain.Subcategory
	err := r.db.WithContext(ctx).Preload("Category").First(&subcategory, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &subcategory, nil
}

func (r *subcategoryRepository) GetAll(ctx context.Context) ([]*domain.Subcategory, error) {
	var subcategories []*domain.Subcategory
	err := r.db.WithContext(ctx).Preload("Category").Order("name").Find(&subcategories).Error
	if err != nil {
		return nil, err
	}
	return subcategories, nil
}

func (r *subcategoryRepository) Update(ctx context.Context, subcategory *domain.Subcategory) error {
	return r.db.WithContext(ctx).Save(subcategory).Error
}

func (r *subcategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Subcategory{}, "id = ?", id).Error
}

package category

import (
	"context"

	"gorm.io/gorm"
)

type CategoryRepository interface {
	ListAll(ctx context.Context) ([]*Category, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) ListAll(ctx context.Context) ([]*Category, error) {
	var categories []*Category
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

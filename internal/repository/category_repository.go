package repository

import (
	"context"

	"github.com/yukikurage/store-management-api/internal/database"
	"github.com/yukikurage/store-management-api/internal/models"
	"github.com/yukikurage/store-management-api/internal/utils"
	"gorm.io/gorm"
)

// GormCategoryRepository is a GORM implementation of CategoryRepository
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new CategoryRepository
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &GormCategoryRepository{db: db}
}

func (r *GormCategoryRepository) Create(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *GormCategoryRepository) FindByID(ctx context.Context, id string) (*models.Category, error) {
	var category models.Category
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *GormCategoryRepository) Update(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Model(category).Updates(map[string]any{
		"name":        category.Name,
		"description": category.Description,
	}).Error
}

func (r *GormCategoryRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Category{}).Error
}

func (r *GormCategoryRepository) ListByStore(ctx context.Context, storeID string, page utils.PaginationParams) ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.WithContext(ctx).
		Scopes(database.ByStore(storeID)).
		Order("created_at ASC").
		Scopes(database.Paginate(page)).
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

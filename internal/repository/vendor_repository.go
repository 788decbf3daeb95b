package repository

import (
	"context"

	"github.com/yukikurage/store-management-api/internal/database"
	"github.com/yukikurage/store-management-api/internal/models"
	"github.com/yukikurage/store-management-api/internal/utils"
	"gorm.io/gorm"
)

// GormVendorRepository is a GORM implementation of VendorRepository
type GormVendorRepository struct {
	db *gorm.DB
}

// NewVendorRepository creates a new VendorRepository
func NewVendorRepository(db *gorm.DB) VendorRepository {
	return &GormVendorRepository{db: db}
}

func (r *GormVendorRepository) Create(ctx context.Context, vendor *models.Vendor) error {
	return r.db.WithContext(ctx).Create(vendor).Error
}

func (r *GormVendorRepository) FindInStore(ctx context.Context, storeID, vendorID string) (*models.Vendor, error) {
	var vendor models.Vendor
	if err := r.db.WithContext(ctx).
		Scopes(database.InStore(storeID, vendorID)).
		First(&vendor).Error; err != nil {
		return nil, err
	}
	return &vendor, nil
}

func (r *GormVendorRepository) Update(ctx context.Context, vendor *models.Vendor) error {
	return r.db.WithContext(ctx).Model(vendor).Update("name", vendor.Name).Error
}

func (r *GormVendorRepository) Delete(ctx context.Context, storeID, vendorID string) error {
	return r.db.WithContext(ctx).
		Scopes(database.InStore(storeID, vendorID)).
		Delete(&models.Vendor{}).Error
}

func (r *GormVendorRepository) ListByStore(ctx context.Context, storeID string, page utils.PaginationParams) ([]models.Vendor, error) {
	var vendors []models.Vendor
	if err := r.db.WithContext(ctx).
		Scopes(database.ByStore(storeID)).
		Order("created_at ASC").
		Scopes(database.Paginate(page)).
		Find(&vendors).Error; err != nil {
		return nil, err
	}
	return vendors, nil
}

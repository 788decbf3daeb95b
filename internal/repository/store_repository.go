package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/yukikurage/store-management-api/internal/database"
	"github.com/yukikurage/store-management-api/internal/models"
	"github.com/yukikurage/store-management-api/internal/utils"
	"gorm.io/gorm"
)

var (
	// ErrCreateStore is returned when creating the store fails inside the create transaction.
	ErrCreateStore = errors.New("store repository: create store failed")
	// ErrCreateOwnerAssignment is returned when creating the owner's assignment fails inside the create transaction.
	ErrCreateOwnerAssignment = errors.New("store repository: create owner assignment failed")
)

// GormStoreRepository is a GORM implementation of StoreRepository
type GormStoreRepository struct {
	db *gorm.DB
}

// NewStoreRepository creates a new StoreRepository
func NewStoreRepository(db *gorm.DB) StoreRepository {
	return &GormStoreRepository{db: db}
}

// CreateWithOwner creates a store and the owner's assignment atomically.
func (r *GormStoreRepository) CreateWithOwner(ctx context.Context, store *models.Store, owner *models.StaffAssignment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(store).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateStore, err)
		}

		owner.StoreID = store.ID
		owner.UserID = store.CreatedByUserID

		if err := tx.Create(owner).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateOwnerAssignment, err)
		}

		return nil
	})
}

// FindByID finds a store by ID
func (r *GormStoreRepository) FindByID(ctx context.Context, id string) (*models.Store, error) {
	var store models.Store
	if err := r.db.WithContext(ctx).Preload("CreatedByUser").Where("id = ?", id).First(&store).Error; err != nil {
		return nil, err
	}
	return &store, nil
}

// FindByOwnerAndName finds a store of the given owner by exact name
func (r *GormStoreRepository) FindByOwnerAndName(ctx context.Context, ownerID, name string) (*models.Store, error) {
	var store models.Store
	if err := r.db.WithContext(ctx).
		Where("created_by_user_id = ? AND name = ?", ownerID, name).
		First(&store).Error; err != nil {
		return nil, err
	}
	return &store, nil
}

// Update updates a store's mutable columns
func (r *GormStoreRepository) Update(ctx context.Context, store *models.Store) error {
	return r.db.WithContext(ctx).Model(store).Update("name", store.Name).Error
}

// Delete deletes a store and all related data in a transaction
func (r *GormStoreRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dependents := []any{
			&models.Category{},
			&models.Customer{},
			&models.Vendor{},
			&models.StaffAssignment{},
		}
		for _, model := range dependents {
			if err := tx.Scopes(database.ByStore(id)).Delete(model).Error; err != nil {
				return err
			}
		}

		return tx.Where("id = ?", id).Delete(&models.Store{}).Error
	})
}

// ListByOwner lists stores created by the user
func (r *GormStoreRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.Store, error) {
	var stores []models.Store
	if err := r.db.WithContext(ctx).
		Where("created_by_user_id = ?", ownerID).
		Order("created_at ASC").
		Find(&stores).Error; err != nil {
		return nil, err
	}
	return stores, nil
}

// ListMemberNotOwner lists stores the user is assigned to but did not create
func (r *GormStoreRepository) ListMemberNotOwner(ctx context.Context, userID string) ([]models.Store, error) {
	var stores []models.Store
	memberSubQuery := r.db.Model(&models.StaffAssignment{}).
		Select("1").
		Where("staff_assignments.store_id = stores.id").
		Where("staff_assignments.user_id = ?", userID)

	if err := r.db.WithContext(ctx).
		Preload("CreatedByUser").
		Where("EXISTS (?)", memberSubQuery).
		Where("stores.created_by_user_id <> ?", userID).
		Order("stores.created_at ASC").
		Find(&stores).Error; err != nil {
		return nil, err
	}
	return stores, nil
}

// AddStaff creates a staff assignment
func (r *GormStoreRepository) AddStaff(ctx context.Context, assignment *models.StaffAssignment) error {
	return r.db.WithContext(ctx).Create(assignment).Error
}

// FindStaff finds the assignment of a user in a store
func (r *GormStoreRepository) FindStaff(ctx context.Context, storeID, userID string) (*models.StaffAssignment, error) {
	var assignment models.StaffAssignment
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("store_id = ? AND user_id = ?", storeID, userID).
		First(&assignment).Error; err != nil {
		return nil, err
	}
	return &assignment, nil
}

// UpdateStaff saves the role of a staff assignment
func (r *GormStoreRepository) UpdateStaff(ctx context.Context, assignment *models.StaffAssignment) error {
	return r.db.WithContext(ctx).Model(assignment).Update("role", assignment.Role).Error
}

// RemoveStaff deletes the assignment of a user in a store
func (r *GormStoreRepository) RemoveStaff(ctx context.Context, storeID, userID string) error {
	return r.db.WithContext(ctx).
		Where("store_id = ? AND user_id = ?", storeID, userID).
		Delete(&models.StaffAssignment{}).Error
}

// ListStaff lists assignments of a store with users preloaded
func (r *GormStoreRepository) ListStaff(ctx context.Context, storeID string, page utils.PaginationParams) ([]models.StaffAssignment, error) {
	var assignments []models.StaffAssignment
	if err := r.db.WithContext(ctx).
		Preload("User").
		Scopes(database.ByStore(storeID)).
		Order("created_at ASC").
		Scopes(database.Paginate(page)).
		Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

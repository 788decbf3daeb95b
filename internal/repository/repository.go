package repository

import (
	"context"

	"github.com/yukikurage/store-management-api/internal/models"
	"github.com/yukikurage/store-management-api/internal/utils"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *models.User) error

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id string) (*models.User, error)

	// FindByUsernameOrEmail finds the first user whose username or email matches
	// either of the given values
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*models.User, error)

	// FindByRefreshToken finds the user currently holding the given refresh token
	FindByRefreshToken(ctx context.Context, token string) (*models.User, error)

	// SetRefreshToken replaces the stored refresh token; nil clears it
	SetRefreshToken(ctx context.Context, userID string, token *string) error

	// FindWithStores loads a user together with their store assignments
	FindWithStores(ctx context.Context, id string) (*models.User, error)
}

// StoreRepository defines the interface for store and staff data access
type StoreRepository interface {
	// CreateWithOwner creates a store and the owner's assignment atomically
	CreateWithOwner(ctx context.Context, store *models.Store, owner *models.StaffAssignment) error

	// FindByID finds a store by ID
	FindByID(ctx context.Context, id string) (*models.Store, error)

	// FindByOwnerAndName finds a store of the given owner by exact name
	FindByOwnerAndName(ctx context.Context, ownerID, name string) (*models.Store, error)

	// Update updates a store
	Update(ctx context.Context, store *models.Store) error

	// Delete deletes a store and all dependent records in a transaction
	Delete(ctx context.Context, id string) error

	// ListByOwner lists stores created by the user
	ListByOwner(ctx context.Context, ownerID string) ([]models.Store, error)

	// ListMemberNotOwner lists stores the user is assigned to but did not create
	ListMemberNotOwner(ctx context.Context, userID string) ([]models.Store, error)

	// AddStaff creates a staff assignment
	AddStaff(ctx context.Context, assignment *models.StaffAssignment) error

	// FindStaff finds the assignment of a user in a store
	FindStaff(ctx context.Context, storeID, userID string) (*models.StaffAssignment, error)

	// UpdateStaff saves a staff assignment
	UpdateStaff(ctx context.Context, assignment *models.StaffAssignment) error

	// RemoveStaff deletes the assignment of a user in a store
	RemoveStaff(ctx context.Context, storeID, userID string) error

	// ListStaff lists assignments of a store with users preloaded
	ListStaff(ctx context.Context, storeID string, page utils.PaginationParams) ([]models.StaffAssignment, error)
}

// CategoryRepository defines the interface for category data access
type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	FindByID(ctx context.Context, id string) (*models.Category, error)
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id string) error
	ListByStore(ctx context.Context, storeID string, page utils.PaginationParams) ([]models.Category, error)
}

// CustomerRepository defines the interface for customer data access
type CustomerRepository interface {
	Create(ctx context.Context, customer *models.Customer) error
	// FindInStore finds a customer only if it belongs to the store
	FindInStore(ctx context.Context, storeID, customerID string) (*models.Customer, error)
	Update(ctx context.Context, customer *models.Customer) error
	Delete(ctx context.Context, storeID, customerID string) error
	ListByStore(ctx context.Context, storeID string, page utils.PaginationParams) ([]models.Customer, error)
}

// VendorRepository defines the interface for vendor data access
type VendorRepository interface {
	Create(ctx context.Context, vendor *models.Vendor) error
	// FindInStore finds a vendor only if it belongs to the store
	FindInStore(ctx context.Context, storeID, vendorID string) (*models.Vendor, error)
	Update(ctx context.Context, vendor *models.Vendor) error
	Delete(ctx context.Context, storeID, vendorID string) error
	ListByStore(ctx context.Context, storeID string, page utils.PaginationParams) ([]models.Vendor, error)
}

package repository

import (
	"context"

	"github.com/yukikurage/store-management-api/internal/database"
	"github.com/yukikurage/store-management-api/internal/models"
	"github.com/yukikurage/store-management-api/internal/utils"
	"gorm.io/gorm"
)

// GormCustomerRepository is a GORM implementation of CustomerRepository
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new CustomerRepository
func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &GormCustomerRepository{db: db}
}

func (r *GormCustomerRepository) Create(ctx context.Context, customer *models.Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

func (r *GormCustomerRepository) FindInStore(ctx context.Context, storeID, customerID string) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.WithContext(ctx).
		Scopes(database.InStore(storeID, customerID)).
		First(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *GormCustomerRepository) Update(ctx context.Context, customer *models.Customer) error {
	return r.db.WithContext(ctx).Model(customer).Update("name", customer.Name).Error
}

func (r *GormCustomerRepository) Delete(ctx context.Context, storeID, customerID string) error {
	return r.db.WithContext(ctx).
		Scopes(database.InStore(storeID, customerID)).
		Delete(&models.Customer{}).Error
}

func (r *GormCustomerRepository) ListByStore(ctx context.Context, storeID string, page utils.PaginationParams) ([]models.Customer, error) {
	var customers []models.Customer
	if err := r.db.WithContext(ctx).
		Scopes(database.ByStore(storeID)).
		Order("created_at ASC").
		Scopes(database.Paginate(page)).
		Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

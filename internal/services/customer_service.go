package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yukikurage/store-management-api/internal/models"
	"github.com/yukikurage/store-management-api/internal/repository"
	"github.com/yukikurage/store-management-api/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrCustomerNotFound    = errors.New("no customer found")
	ErrNoCustomers         = errors.New("no customers found")
	ErrInvalidCustomerName = errors.New("customer name is required")
)

// CustomerService provides business logic for store customers.
type CustomerService struct {
	customerRepo repository.CustomerRepository
	access       *AccessResolver
}

// NewCustomerService creates a new CustomerService.
func NewCustomerService(customerRepo repository.CustomerRepository, access *AccessResolver) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		access:       access,
	}
}

// CreateCustomer adds a customer to a store owned by the actor.
func (s *CustomerService) CreateCustomer(ctx context.Context, actorID, storeID, name string) (*models.Customer, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrInvalidCustomerName
	}

	if _, err := s.access.AuthorizeMutation(ctx, actorID, storeID, CapabilityManageCustomer); err != nil {
		return nil, err
	}

	customer := &models.Customer{
		Name:    name,
		StoreID: storeID,
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	return customer, nil
}

// UpdateCustomer renames a customer of the store.
func (s *CustomerService) UpdateCustomer(ctx context.Context, actorID, storeID, customerID, name string) (*models.Customer, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrInvalidCustomerName
	}

	customer, err := s.authorizeCustomerMutation(ctx, actorID, storeID, customerID)
	if err != nil {
		return nil, err
	}

	customer.Name = name
	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}

	return customer, nil
}

// RemoveCustomer deletes a customer of the store.
func (s *CustomerService) RemoveCustomer(ctx context.Context, actorID, storeID, customerID string) error {
	customer, err := s.authorizeCustomerMutation(ctx, actorID, storeID, customerID)
	if err != nil {
		return err
	}

	if err := s.customerRepo.Delete(ctx, customer.StoreID, customer.ID); err != nil {
		return fmt.Errorf("failed to remove customer: %w", err)
	}
	return nil
}

// GetCustomer returns one customer to a member of the store.
func (s *CustomerService) GetCustomer(ctx context.Context, userID, storeID, customerID string) (*models.Customer, error) {
	if _, err := s.access.AuthorizeRead(ctx, userID, storeID); err != nil {
		return nil, err
	}

	return s.findInStore(ctx, storeID, customerID)
}

// ListCustomers returns the customers of a store to a member of the store.
func (s *CustomerService) ListCustomers(ctx context.Context, userID, storeID string, page utils.PaginationParams) ([]models.Customer, error) {
	if _, err := s.access.AuthorizeRead(ctx, userID, storeID); err != nil {
		return nil, err
	}

	customers, err := s.customerRepo.ListByStore(ctx, storeID, page)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	if len(customers) == 0 {
		return nil, ErrNoCustomers
	}
	return customers, nil
}

// authorizeCustomerMutation checks store existence, customer existence in the
// store and ownership, in that order.
func (s *CustomerService) authorizeCustomerMutation(ctx context.Context, actorID, storeID, customerID string) (*models.Customer, error) {
	store, err := s.access.LoadStore(ctx, storeID)
	if err != nil {
		return nil, err
	}

	customer, err := s.findInStore(ctx, store.ID, customerID)
	if err != nil {
		return nil, err
	}

	if err := s.access.CheckOwner(store, actorID, CapabilityManageCustomer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) findInStore(ctx context.Context, storeID, customerID string) (*models.Customer, error) {
	customer, err := s.customerRepo.FindInStore(ctx, storeID, customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to find customer: %w", err)
	}
	return customer, nil
}

package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yukikurage/store-management-api/internal/models"
	"github.com/yukikurage/store-management-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrInvalidStoreName   = errors.New("store name cannot be empty")
	ErrStoreNameTaken     = errors.New("shop with this name already exists")
	ErrNoAssociatedStores = errors.New("no shops found where the user is associated")
)

// StoreService provides business logic for store operations.
type StoreService struct {
	storeRepo repository.StoreRepository
	access    *AccessResolver
}

// NewStoreService creates a new StoreService.
func NewStoreService(storeRepo repository.StoreRepository, access *AccessResolver) *StoreService {
	return &StoreService{
		storeRepo: storeRepo,
		access:    access,
	}
}

// CreateStoreInput represents parameters to create a new store.
type CreateStoreInput struct {
	Name    string
	OwnerID string
}

// CreateStore creates a store owned by the caller. The owner is also recorded
// as an OWNER staff assignment so that membership reads include them.
func (s *StoreService) CreateStore(ctx context.Context, input CreateStoreInput) (*models.Store, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrInvalidStoreName
	}

	if _, err := s.storeRepo.FindByOwnerAndName(ctx, input.OwnerID, name); err == nil {
		return nil, ErrStoreNameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check store name: %w", err)
	}

	store := &models.Store{
		Name:            name,
		CreatedByUserID: input.OwnerID,
	}
	owner := &models.StaffAssignment{
		Role: models.StaffRoleOwner,
	}

	if err := s.storeRepo.CreateWithOwner(ctx, store, owner); err != nil {
		return nil, fmt.Errorf("failed to create store: %w", err)
	}

	// Reload so the owner relation is populated for the response
	return s.access.LoadStore(ctx, store.ID)
}

// UpdateStore renames a store.
func (s *StoreService) UpdateStore(ctx context.Context, actorID, storeID, name string) (*models.Store, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidStoreName
	}

	store, err := s.access.AuthorizeMutation(ctx, actorID, storeID, CapabilityManageStore)
	if err != nil {
		return nil, err
	}

	store.Name = name
	if err := s.storeRepo.Update(ctx, store); err != nil {
		return nil, fmt.Errorf("failed to update store: %w", err)
	}

	return store, nil
}

// DeleteStore removes a store together with its categories, customers,
// vendors and staff assignments.
func (s *StoreService) DeleteStore(ctx context.Context, actorID, storeID string) (string, error) {
	store, err := s.access.AuthorizeMutation(ctx, actorID, storeID, CapabilityManageStore)
	if err != nil {
		return "", err
	}

	if err := s.storeRepo.Delete(ctx, store.ID); err != nil {
		return "", fmt.Errorf("failed to delete store: %w", err)
	}

	return store.ID, nil
}

// ListOwnedStores returns the stores created by the user.
func (s *StoreService) ListOwnedStores(ctx context.Context, userID string) ([]models.Store, error) {
	stores, err := s.storeRepo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list owned stores: %w", err)
	}
	return stores, nil
}

// ListMemberStores returns stores the user is assigned to but does not own.
func (s *StoreService) ListMemberStores(ctx context.Context, userID string) ([]models.Store, error) {
	stores, err := s.storeRepo.ListMemberNotOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list member stores: %w", err)
	}
	if len(stores) == 0 {
		return nil, ErrNoAssociatedStores
	}
	return stores, nil
}

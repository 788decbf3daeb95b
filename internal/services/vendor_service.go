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
	ErrVendorNotFound    = errors.New("vendor not found")
	ErrInvalidVendorName = errors.New("vendor name cannot be empty")
)

// VendorService provides business logic for store vendors.
type VendorService struct {
	vendorRepo repository.VendorRepository
	access     *AccessResolver
}

// NewVendorService creates a new VendorService.
func NewVendorService(vendorRepo repository.VendorRepository, access *AccessResolver) *VendorService {
	return &VendorService{
		vendorRepo: vendorRepo,
		access:     access,
	}
}

// CreateVendor adds a vendor to a store owned by the actor.
func (s *VendorService) CreateVendor(ctx context.Context, actorID, storeID, name string) (*models.Vendor, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrInvalidVendorName
	}

	if _, err := s.access.AuthorizeMutation(ctx, actorID, storeID, CapabilityManageVendor); err != nil {
		return nil, err
	}

	vendor := &models.Vendor{
		Name:    name,
		StoreID: storeID,
	}
	if err := s.vendorRepo.Create(ctx, vendor); err != nil {
		return nil, fmt.Errorf("failed to create vendor: %w", err)
	}

	return vendor, nil
}

// UpdateVendor renames a vendor of the store.
func (s *VendorService) UpdateVendor(ctx context.Context, actorID, storeID, vendorID, name string) (*models.Vendor, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrInvalidVendorName
	}

	vendor, err := s.authorizeVendorMutation(ctx, actorID, storeID, vendorID)
	if err != nil {
		return nil, err
	}

	vendor.Name = name
	if err := s.vendorRepo.Update(ctx, vendor); err != nil {
		return nil, fmt.Errorf("failed to update vendor: %w", err)
	}

	return vendor, nil
}

// DeleteVendor removes a vendor of the store and returns its id.
func (s *VendorService) DeleteVendor(ctx context.Context, actorID, storeID, vendorID string) (string, error) {
	vendor, err := s.authorizeVendorMutation(ctx, actorID, storeID, vendorID)
	if err != nil {
		return "", err
	}

	if err := s.vendorRepo.Delete(ctx, vendor.StoreID, vendor.ID); err != nil {
		return "", fmt.Errorf("failed to delete vendor: %w", err)
	}
	return vendor.ID, nil
}

// ListVendors returns the vendors of a store. Only the owner may list them.
func (s *VendorService) ListVendors(ctx context.Context, actorID, storeID string, page utils.PaginationParams) ([]models.Vendor, error) {
	if _, err := s.access.AuthorizeMutation(ctx, actorID, storeID, CapabilityViewVendors); err != nil {
		return nil, err
	}

	vendors, err := s.vendorRepo.ListByStore(ctx, storeID, page)
	if err != nil {
		return nil, fmt.Errorf("failed to list vendors: %w", err)
	}
	return vendors, nil
}

func (s *VendorService) authorizeVendorMutation(ctx context.Context, actorID, storeID, vendorID string) (*models.Vendor, error) {
	store, err := s.access.LoadStore(ctx, storeID)
	if err != nil {
		return nil, err
	}

	vendor, err := s.vendorRepo.FindInStore(ctx, store.ID, vendorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVendorNotFound
		}
		return nil, fmt.Errorf("failed to find vendor: %w", err)
	}

	if err := s.access.CheckOwner(store, actorID, CapabilityManageVendor); err != nil {
		return nil, err
	}
	return vendor, nil
}

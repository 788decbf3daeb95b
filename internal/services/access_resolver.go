package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yukikurage/store-management-api/internal/models"
	"github.com/yukikurage/store-management-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrStoreNotFound = errors.New("store not found")
	ErrAccessDenied  = errors.New("access denied")
)

// Capability names a kind of operation gated by the resolver.
type Capability string

const (
	CapabilityManageStore    Capability = "manage_store"
	CapabilityManageStaff    Capability = "manage_staff"
	CapabilityViewStaff      Capability = "view_staff"
	CapabilityManageCategory Capability = "manage_category"
	CapabilityManageCustomer Capability = "manage_customer"
	CapabilityManageVendor   Capability = "manage_vendor"
	CapabilityViewVendors    Capability = "view_vendors"
	CapabilityReadStore      Capability = "read_store"
)

// AccessDeniedError is returned when an authenticated actor lacks a capability
// on a store. Reason is safe to show to the caller.
type AccessDeniedError struct {
	Capability Capability
	Reason     string
}

func (e *AccessDeniedError) Error() string {
	return fmt.Sprintf("access denied (%s): %s", e.Capability, e.Reason)
}

// Is makes errors.Is(err, ErrAccessDenied) match any denial.
func (e *AccessDeniedError) Is(target error) bool {
	return target == ErrAccessDenied
}

// AccessResolver decides who may act on a store.
//
// Every capability except CapabilityReadStore is granted to the store owner
// only. Staff assignments, whatever their role, grant read visibility and
// nothing else.
type AccessResolver struct {
	storeRepo repository.StoreRepository
}

// NewAccessResolver creates a new AccessResolver.
func NewAccessResolver(storeRepo repository.StoreRepository) *AccessResolver {
	return &AccessResolver{storeRepo: storeRepo}
}

// LoadStore returns the store or ErrStoreNotFound.
func (r *AccessResolver) LoadStore(ctx context.Context, storeID string) (*models.Store, error) {
	store, err := r.storeRepo.FindByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, fmt.Errorf("failed to find store: %w", err)
	}
	return store, nil
}

// IsStoreOwner reports whether userID created the store.
func (r *AccessResolver) IsStoreOwner(ctx context.Context, userID, storeID string) (bool, error) {
	store, err := r.LoadStore(ctx, storeID)
	if err != nil {
		return false, err
	}
	return store.CreatedByUserID == userID, nil
}

// ResolveStaffRole returns the user's role in the store, if assigned.
func (r *AccessResolver) ResolveStaffRole(ctx context.Context, userID, storeID string) (models.StaffRole, bool, error) {
	assignment, err := r.storeRepo.FindStaff(ctx, storeID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to resolve staff role: %w", err)
	}
	return assignment.Role, true, nil
}

// AuthorizeMutation loads the store and checks that the actor owns it.
// A missing store yields ErrStoreNotFound before any ownership decision.
func (r *AccessResolver) AuthorizeMutation(ctx context.Context, actorID, storeID string, capability Capability) (*models.Store, error) {
	store, err := r.LoadStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if err := r.CheckOwner(store, actorID, capability); err != nil {
		return nil, err
	}
	return store, nil
}

// CheckOwner applies the owner-only policy to an already loaded store.
func (r *AccessResolver) CheckOwner(store *models.Store, actorID string, capability Capability) error {
	if store.CreatedByUserID != actorID {
		return &AccessDeniedError{Capability: capability, Reason: denialReason(capability)}
	}
	return nil
}

// AuthorizeRead requires a staff assignment of the user in the store.
func (r *AccessResolver) AuthorizeRead(ctx context.Context, userID, storeID string) (*models.StaffAssignment, error) {
	assignment, err := r.storeRepo.FindStaff(ctx, storeID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &AccessDeniedError{Capability: CapabilityReadStore, Reason: denialReason(CapabilityReadStore)}
		}
		return nil, fmt.Errorf("failed to verify store membership: %w", err)
	}
	return assignment, nil
}

func denialReason(capability Capability) string {
	switch capability {
	case CapabilityManageStore:
		return "Only owner can modify the store"
	case CapabilityManageStaff:
		return "Only owner can manage staff"
	case CapabilityViewStaff:
		return "Only owner can fetch staff details"
	case CapabilityManageCategory:
		return "Only owner can manage categories"
	case CapabilityManageCustomer:
		return "Only owner can manage customers"
	case CapabilityManageVendor:
		return "Only owner can manage vendors"
	case CapabilityViewVendors:
		return "Only owner can see vendors"
	default:
		return "Cannot access this resource"
	}
}

package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yukikurage/store-management-api/internal/models"
	"github.com/yukikurage/store-management-api/internal/repository"
	"github.com/yukikurage/store-management-api/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrStaffNotFound        = errors.New("staff not found")
	ErrStaffAlreadyAssigned = errors.New("user is already assigned to this store")
	ErrInvalidStaffRole     = errors.New("invalid staff role")
	ErrCannotRemoveYourself = errors.New("owner cannot remove their own assignment")
)

// StaffService manages the staff assignments of stores.
type StaffService struct {
	storeRepo repository.StoreRepository
	userRepo  repository.UserRepository
	access    *AccessResolver
}

// NewStaffService creates a new StaffService.
func NewStaffService(storeRepo repository.StoreRepository, userRepo repository.UserRepository, access *AccessResolver) *StaffService {
	return &StaffService{
		storeRepo: storeRepo,
		userRepo:  userRepo,
		access:    access,
	}
}

// AddStaff assigns an existing user to a store with the given role.
func (s *StaffService) AddStaff(ctx context.Context, actorID, storeID, userID string, role models.StaffRole) (*models.StaffAssignment, error) {
	if !role.Valid() {
		return nil, ErrInvalidStaffRole
	}

	if _, err := s.access.AuthorizeMutation(ctx, actorID, storeID, CapabilityManageStaff); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if _, err := s.storeRepo.FindStaff(ctx, storeID, user.ID); err == nil {
		return nil, ErrStaffAlreadyAssigned
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check staff assignment: %w", err)
	}

	assignment := &models.StaffAssignment{
		UserID:  user.ID,
		StoreID: storeID,
		Role:    role,
	}
	if err := s.storeRepo.AddStaff(ctx, assignment); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrStaffAlreadyAssigned
		}
		return nil, fmt.Errorf("failed to add staff: %w", err)
	}
	assignment.User = *user

	return assignment, nil
}

// UpdateStaffRole changes the role of an assigned user.
func (s *StaffService) UpdateStaffRole(ctx context.Context, actorID, storeID, userID string, role models.StaffRole) (*models.StaffAssignment, error) {
	if !role.Valid() {
		return nil, ErrInvalidStaffRole
	}

	store, assignment, err := s.loadAssignment(ctx, storeID, userID)
	if err != nil {
		return nil, err
	}

	if err := s.access.CheckOwner(store, actorID, CapabilityManageStaff); err != nil {
		return nil, err
	}

	assignment.Role = role
	if err := s.storeRepo.UpdateStaff(ctx, assignment); err != nil {
		return nil, fmt.Errorf("failed to update staff: %w", err)
	}

	return assignment, nil
}

// RemoveStaff removes a user's assignment from a store and returns the
// assignment id. The owner cannot remove their own assignment.
func (s *StaffService) RemoveStaff(ctx context.Context, actorID, storeID, userID string) (string, error) {
	store, assignment, err := s.loadAssignment(ctx, storeID, userID)
	if err != nil {
		return "", err
	}

	if err := s.access.CheckOwner(store, actorID, CapabilityManageStaff); err != nil {
		return "", err
	}

	if userID == actorID {
		return "", ErrCannotRemoveYourself
	}

	if err := s.storeRepo.RemoveStaff(ctx, storeID, userID); err != nil {
		return "", fmt.Errorf("failed to remove staff: %w", err)
	}
	return assignment.ID, nil
}

// ListStaff returns the assignments of a store. Only the owner may list them.
func (s *StaffService) ListStaff(ctx context.Context, actorID, storeID string, page utils.PaginationParams) ([]models.StaffAssignment, error) {
	if _, err := s.access.AuthorizeMutation(ctx, actorID, storeID, CapabilityViewStaff); err != nil {
		return nil, err
	}

	staff, err := s.storeRepo.ListStaff(ctx, storeID, page)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	return staff, nil
}

func (s *StaffService) loadAssignment(ctx context.Context, storeID, userID string) (*models.Store, *models.StaffAssignment, error) {
	store, err := s.access.LoadStore(ctx, storeID)
	if err != nil {
		return nil, nil, err
	}

	assignment, err := s.storeRepo.FindStaff(ctx, store.ID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrStaffNotFound
		}
		return nil, nil, fmt.Errorf("failed to find staff: %w", err)
	}
	return store, assignment, nil
}

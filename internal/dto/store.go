package dto

import (
	"time"

	"github.com/yukikurage/store-management-api/internal/models"
)

// StoreDTO represents a store in API responses
type StoreDTO struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	CreatedByUserID string    `json:"createdByUserId"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
	Owner           *UserDTO  `json:"owner,omitempty"`
}

// StaffAssignmentDTO represents a user's role in a store
type StaffAssignmentDTO struct {
	ID      string           `json:"id"`
	UserID  string           `json:"userId"`
	StoreID string           `json:"storeId"`
	Role    models.StaffRole `json:"role"`
	User    *UserDTO         `json:"user,omitempty"`
	Store   *StoreDTO        `json:"store,omitempty"`
}

func ToStoreDTO(store models.Store) StoreDTO {
	d := StoreDTO{
		ID:              store.ID,
		Name:            store.Name,
		CreatedByUserID: store.CreatedByUserID,
		CreatedAt:       store.CreatedAt,
		UpdatedAt:       store.UpdatedAt,
	}
	if store.CreatedByUser.ID != "" {
		owner := ToUserDTO(store.CreatedByUser)
		d.Owner = &owner
	}
	return d
}

func ToStoreDTOs(stores []models.Store) []StoreDTO {
	out := make([]StoreDTO, 0, len(stores))
	for _, s := range stores {
		out = append(out, ToStoreDTO(s))
	}
	return out
}

func ToStaffAssignmentDTO(a models.StaffAssignment) StaffAssignmentDTO {
	d := StaffAssignmentDTO{
		ID:      a.ID,
		UserID:  a.UserID,
		StoreID: a.StoreID,
		Role:    a.Role,
	}
	// Relations are only set when preloaded
	if a.User.ID != "" {
		user := ToUserDTO(a.User)
		d.User = &user
	}
	if a.Store.ID != "" {
		store := ToStoreDTO(a.Store)
		d.Store = &store
	}
	return d
}

func ToStaffAssignmentDTOs(assignments []models.StaffAssignment) []StaffAssignmentDTO {
	out := make([]StaffAssignmentDTO, 0, len(assignments))
	for _, a := range assignments {
		out = append(out, ToStaffAssignmentDTO(a))
	}
	return out
}

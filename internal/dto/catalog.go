package dto

import (
	"time"

	"github.com/yukikurage/store-management-api/internal/models"
)

// CategoryDTO represents a category in API responses
type CategoryDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	StoreID     string    `json:"storeId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CustomerDTO represents a customer in API responses
type CustomerDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	StoreID   string    `json:"storeId"`
	CreatedAt time.Time `json:"createdAt"`
}

// VendorDTO represents a vendor in API responses
type VendorDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	StoreID   string    `json:"storeId"`
	CreatedAt time.Time `json:"createdAt"`
}

func ToCategoryDTO(c models.Category) CategoryDTO {
	return CategoryDTO{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		StoreID:     c.StoreID,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func ToCategoryDTOs(categories []models.Category) []CategoryDTO {
	out := make([]CategoryDTO, 0, len(categories))
	for _, c := range categories {
		out = append(out, ToCategoryDTO(c))
	}
	return out
}

func ToCustomerDTO(c models.Customer) CustomerDTO {
	return CustomerDTO{ID: c.ID, Name: c.Name, StoreID: c.StoreID, CreatedAt: c.CreatedAt}
}

func ToCustomerDTOs(customers []models.Customer) []CustomerDTO {
	out := make([]CustomerDTO, 0, len(customers))
	for _, c := range customers {
		out = append(out, ToCustomerDTO(c))
	}
	return out
}

func ToVendorDTO(v models.Vendor) VendorDTO {
	return VendorDTO{ID: v.ID, Name: v.Name, StoreID: v.StoreID, CreatedAt: v.CreatedAt}
}

func ToVendorDTOs(vendors []models.Vendor) []VendorDTO {
	out := make([]VendorDTO, 0, len(vendors))
	for _, v := range vendors {
		out = append(out, ToVendorDTO(v))
	}
	return out
}

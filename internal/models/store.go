package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Store is the tenant boundary. CreatedByUserID never changes after creation.
type Store struct {
	ID              string    `gorm:"type:varchar(36);primarykey" json:"id"`
	Name            string    `gorm:"type:varchar(255);not null" json:"name"`
	CreatedByUserID string    `gorm:"type:varchar(36);not null" json:"createdByUserId"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`

	// Relations
	CreatedByUser User              `gorm:"foreignKey:CreatedByUserID" json:"-"`
	Staff         []StaffAssignment `gorm:"foreignKey:StoreID" json:"-"`
	Categories    []Category        `gorm:"foreignKey:StoreID" json:"-"`
	Customers     []Customer        `gorm:"foreignKey:StoreID" json:"-"`
	Vendors       []Vendor          `gorm:"foreignKey:StoreID" json:"-"`
}

func (s *Store) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

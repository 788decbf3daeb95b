package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StaffRole string

const (
	StaffRoleOwner   StaffRole = "OWNER"
	StaffRoleManager StaffRole = "MANAGER"
	StaffRoleStaff   StaffRole = "STAFF"
)

// Valid reports whether r is one of the known roles.
func (r StaffRole) Valid() bool {
	switch r {
	case StaffRoleOwner, StaffRoleManager, StaffRoleStaff:
		return true
	}
	return false
}

// StaffAssignment links a user to a store. A user holds at most one role per store.
type StaffAssignment struct {
	ID        string    `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID    string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_staff_user_store" json:"userId"`
	StoreID   string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_staff_user_store" json:"storeId"`
	Role      StaffRole `gorm:"type:varchar(20);not null;default:'STAFF'" json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relations
	User  User  `gorm:"foreignKey:UserID" json:"-"`
	Store Store `gorm:"foreignKey:StoreID" json:"-"`
}

func (a *StaffAssignment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

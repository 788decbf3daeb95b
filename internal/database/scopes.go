package database

import (
	"gorm.io/gorm"

	"github.com/yukikurage/store-management-api/internal/utils"
)

// Paginate applies pagination to a GORM query. A zero limit means no paging.
func Paginate(params utils.PaginationParams) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if params.Limit <= 0 {
			return db
		}
		return db.Offset(params.Offset).Limit(params.Limit)
	}
}

// ByStore restricts a query on a store-scoped table to one store.
func ByStore(storeID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("store_id = ?", storeID)
	}
}

// InStore looks up a store-scoped row by id within one store.
func InStore(storeID, id string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("id = ? AND store_id = ?", id, storeID)
	}
}

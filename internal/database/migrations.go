package database

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/yukikurage/store-management-api/internal/models"
	"gorm.io/gorm"
)

// AddIndexes adds the store-scoped lookup indexes used by every resource query.
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		model   any
		table   string
		name    string
		columns string
	}{
		{&models.Store{}, "stores", "idx_stores_created_by_user_id", "created_by_user_id"},
		{&models.Store{}, "stores", "idx_stores_owner_name", "created_by_user_id, name"},

		{&models.StaffAssignment{}, "staff_assignments", "idx_staff_assignments_store_id", "store_id"},

		{&models.Category{}, "categories", "idx_categories_store_id", "store_id"},
		{&models.Customer{}, "customers", "idx_customers_store_id", "store_id"},
		{&models.Vendor{}, "vendors", "idx_vendors_store_id", "store_id"},
	}

	migrator := db.Migrator()
	for _, idx := range indexes {
		if migrator.HasIndex(idx.model, idx.name) {
			log.Debug().Str("index", idx.name).Msg("index already exists, skipping")
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		log.Info().Str("index", idx.name).Str("table", idx.table).Str("columns", idx.columns).Msg("created index")
	}

	return nil
}

// database/bootstrap.go
package database

import (
	"fmt"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"greengreen/entities"
	"greengreen/pkg/buyer"
)

// OpenSQLite opens the database at path and brings the schema up to date.
func OpenSQLite(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate runs the pricing dedupe and then AutoMigrate for every entity.
func Migrate(db *gorm.DB) error {
	// must run before AutoMigrate creates idx_pricing_key
	if err := dedupeCropPricing(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if err := db.AutoMigrate(
		&entities.User{},
		&entities.UserProfile{},
		&entities.Crop{},
		&entities.CropPricing{},
		&entities.PlantingWindow{},
		&entities.SeedSource{},
		&entities.UserCrop{},
		&buyer.Buyer{},
	); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return nil
}

// dedupeCropPricing keeps only the newest row per (crop, channel, region) so
// the unique pricing index can be built on databases that predate it.
func dedupeCropPricing(db *gorm.DB) error {
	var tbl string
	if err := db.Raw(`SELECT name FROM sqlite_master WHERE type='table' AND name='crop_pricings'`).Scan(&tbl).Error; err != nil {
		return fmt.Errorf("check table exist: %w", err)
	}
	if tbl == "" {
		return nil
	}

	var idx string
	if err := db.Raw(`SELECT name FROM sqlite_master WHERE type='index' AND name='idx_pricing_key'`).Scan(&idx).Error; err != nil {
		return fmt.Errorf("check index exist: %w", err)
	}
	if idx != "" {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		return tx.Exec(`
DELETE FROM crop_pricings
WHERE pricing_id NOT IN (
    SELECT MAX(pricing_id) FROM crop_pricings
    GROUP BY crop_id, sales_channel, COALESCE(region, '')
)`).Error
	})
}

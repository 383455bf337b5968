// Package testutil holds helpers shared by package tests.
package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"greengreen/database"
	"greengreen/entities"
)

var dbSeq atomic.Int64

// NewDB returns a migrated in-memory database private to the test.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:gg%d?mode=memory&cache=shared", dbSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

// Crop is a fully populated crop for tests; callers override fields as needed.
func Crop(name string) entities.Crop {
	return entities.Crop{
		Name:             name,
		Category:         "microgreens",
		DifficultyLevel:  "easy",
		DaysToHarvest:    10,
		HarvestFrequency: "weekly",
		HarvestsPerYear:  26,
		YieldPerSqFtLbs:  0.5,
		GrowingMethods:   []string{"indoor", "greenhouse"},
		Pricing: []entities.CropPricing{
			{SalesChannel: "farmers_market", PriceLow: 25, PriceHigh: 40, PriceUnit: "per_lb", Region: "southwest"},
		},
		PlantingWindows: []entities.PlantingWindow{
			{Region: "southwest", PlantingStartMonth: 1, PlantingEndMonth: 12, HarvestStartMonth: 1, HarvestEndMonth: 12},
		},
	}
}

// SeedCrops inserts crops with their associations.
func SeedCrops(t testing.TB, db *gorm.DB, crops ...entities.Crop) []entities.Crop {
	t.Helper()
	for i := range crops {
		if err := db.Create(&crops[i]).Error; err != nil {
			t.Fatalf("seed crop %s: %v", crops[i].Name, err)
		}
	}
	return crops
}

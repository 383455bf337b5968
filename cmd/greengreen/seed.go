package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"greengreen/database"
	"greengreen/pkg/seed"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the crop catalog into the database",
	Long: `Loads a catalog from --file (.yaml, .yml or .xlsx), falling back to
GREENGREEN_CATALOG_FILE and then to the built-in catalog. Crops whose name
already exists are skipped. Exits non-zero when any crop fails to insert.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := database.OpenSQLite(cfg.DBPath)
		if err != nil {
			return err
		}
		path := seedFile
		if path == "" {
			path = cfg.CatalogFile
		}
		return seedCatalog(db, path)
	},
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "catalog file to load instead of the built-in one")
}

func loadCatalog(path string) (*seed.Catalog, error) {
	if path == "" {
		return seed.Default()
	}
	return seed.LoadFile(path)
}

func seedCatalog(db *gorm.DB, path string) error {
	c, err := loadCatalog(path)
	if err != nil {
		return err
	}
	logger.Info("loaded catalog", zap.String("op", "seed"), zap.String("file", path), zap.Int("crops", len(c.Crops)))
	_, err = seed.NewSeeder(db, logger).Seed(c)
	return err
}

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"greengreen/database"
	"greengreen/pkg/calculator"
	cropRepoImp "greengreen/pkg/crop/repositoryImp"
	dashSvcImp "greengreen/pkg/dashboard/serviceImp"
	profileRepoImp "greengreen/pkg/profile/repositoryImp"
	"greengreen/pkg/seed"
)

var (
	exportOut    string
	exportUser   string
	exportFilter calculator.Filter
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the catalog or a grower's ranking as an XLSX workbook",
}

var exportCatalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Export the crop catalog in the layout `seed --file` reads",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := database.OpenSQLite(cfg.DBPath)
		if err != nil {
			return err
		}
		repo := cropRepoImp.New(db)
		crops, err := repo.List("")
		if err != nil {
			return err
		}
		c := &seed.Catalog{}
		for _, cr := range crops {
			// Get also loads seed sources
			full, err := repo.Get(cr.CropID)
			if err != nil {
				return fmt.Errorf("load %s: %w", cr.Name, err)
			}
			c.Crops = append(c.Crops, seed.FromEntity(*full))
		}
		return writeOut(func(w io.Writer) error { return seed.WriteXLSX(w, c) })
	},
}

var exportRankingCmd = &cobra.Command{
	Use:   "ranking",
	Short: "Export one grower's ranked crops",
	RunE: func(cmd *cobra.Command, args []string) error {
		if exportUser == "" {
			return fmt.Errorf("--user is required")
		}
		db, err := database.OpenSQLite(cfg.DBPath)
		if err != nil {
			return err
		}
		svc := dashSvcImp.NewDashboardService(cropRepoImp.New(db), profileRepoImp.New(db), cfg.DefaultRegion, nil, logger)
		return writeOut(func(w io.Writer) error { return svc.Export(exportUser, exportFilter, w) })
	},
}

func init() {
	exportCmd.PersistentFlags().StringVarP(&exportOut, "out", "o", "", "output file (default stdout)")
	exportRankingCmd.Flags().StringVar(&exportUser, "user", "", "user id whose profile drives the ranking")
	exportRankingCmd.Flags().StringVar(&exportFilter.Category, "category", "", "only this crop category")
	exportRankingCmd.Flags().StringVar(&exportFilter.Difficulty, "difficulty", "", "only this difficulty level")
	exportRankingCmd.Flags().StringVar(&exportFilter.HarvestTime, "harvest-time", "", "harvest time range: <30, 30-60, 60-90 or 90+")
	exportCmd.AddCommand(exportCatalogCmd, exportRankingCmd)
}

func writeOut(write func(io.Writer) error) error {
	if exportOut == "" {
		return write(os.Stdout)
	}
	f, err := os.Create(exportOut)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	logger.Info("exported", zap.String("op", "export"), zap.String("file", exportOut))
	return nil
}

package service

import (
	"io"

	"greengreen/pkg/calculator"
	"greengreen/pkg/dashboard/types"
	"greengreen/pkg/planting"
)

type DashboardService interface {
	Dashboard(uid string, f calculator.Filter) (*types.View, error)
	PlantThisWeek(uid string) ([]planting.ProfitableRecommendation, error)
	// Export writes the filtered ranking as an XLSX workbook.
	Export(uid string, f calculator.Filter, w io.Writer) error
}

package serviceImp

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"greengreen/entities"
	"greengreen/pkg/calculator"
)

const rankingSheet = "Ranking"

var exportHeader = []any{
	"Rank", "Crop", "Category", "Difficulty", "Days to Harvest", "Channel",
	"Price Low", "Price High", "Unit", "Revenue per Sq Ft", "Annual Revenue",
}

// WriteWorkbook renders ranked crops as a single-sheet workbook. sqft is
// recorded in the sheet footer.
func WriteWorkbook(w io.Writer, crops []calculator.CalculatedCrop, sqft float64) error {
	x := excelize.NewFile()
	defer x.Close()

	if err := x.SetSheetName("Sheet1", rankingSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := x.SetSheetRow(rankingSheet, "A1", &exportHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, c := range crops {
		row := []any{
			i + 1, c.Name, c.Category, c.DifficultyLevel, c.DaysToHarvest,
			entities.ChannelLabel(c.SelectedPricing.SalesChannel),
			c.PriceRange.Low, c.PriceRange.High, calculator.FormatPriceUnit(c.PriceRange.Unit),
			c.RevenuePerSqFt, c.AnnualRevenue,
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := x.SetSheetRow(rankingSheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	cell, _ := excelize.CoordinatesToCellName(1, len(crops)+3)
	footer := []any{"Growing space (sq ft)", sqft}
	if err := x.SetSheetRow(rankingSheet, cell, &footer); err != nil {
		return fmt.Errorf("write footer: %w", err)
	}
	if err := x.SetPanes(rankingSheet, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"}); err != nil {
		return fmt.Errorf("freeze header: %w", err)
	}
	if _, err := x.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// Package crop serves the crop catalog: listings, detail pages and the
// per-crop profitability calculator.
package crop

import (
	"greengreen/entities"
	"greengreen/pkg/calculator"
)

// Insights describes the market for a crop category.
type Insights struct {
	Buyers string `json:"buyers"`
	Demand string `json:"demand"`
	Uses   string `json:"uses"`
	// HarvestTip is specific to the crop's harvest frequency.
	HarvestTip string `json:"harvest_tip"`
}

// Detail is a crop with everything its detail page shows.
type Detail struct {
	entities.Crop
	Insights              Insights              `json:"insights"`
	RepresentativePricing calculator.PriceRange `json:"representative_pricing"`
	ContinuousHarvest     bool                  `json:"continuous_harvest"`
	ClimateSummary        string                `json:"climate_summary"`
	SpaceSummary          string                `json:"space_summary"`
}

// Calculation is the result of the profitability calculator for one crop
// and growing area.
type Calculation struct {
	CropID         uint                  `json:"crop_id"`
	CropName       string                `json:"crop_name"`
	SqFt           float64               `json:"sqft"`
	Channel        string                `json:"channel,omitempty"`
	PriceRange     calculator.PriceRange `json:"price_range"`
	AveragePrice   float64               `json:"average_price"`
	AnnualYield    float64               `json:"annual_yield_lbs"`
	AnnualRevenue  float64               `json:"annual_revenue"`
	RevenuePerSqFt float64               `json:"revenue_per_sqft"`
	Display        CalculationDisplay    `json:"display"`
}

type CalculationDisplay struct {
	AveragePrice   string `json:"average_price"`
	AnnualRevenue  string `json:"annual_revenue"`
	RevenuePerSqFt string `json:"revenue_per_sqft"`
	PriceUnit      string `json:"price_unit"`
}

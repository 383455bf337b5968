package crop

import (
	"fmt"
	"strings"

	"greengreen/entities"
	"greengreen/pkg/calculator"
)

var categoryInsights = map[string]Insights{
	"microgreens": {
		Buyers: "High-end restaurants, health-conscious consumers, juice bars",
		Demand: "Year-round with peaks in winter months",
		Uses:   "Garnishes, salads, smoothies, sandwiches",
	},
	"herbs": {
		Buyers: "Restaurants, grocery stores, farmers market customers",
		Demand: "Peak in summer, steady year-round",
		Uses:   "Culinary applications, teas, garnishes",
	},
	"vegetables": {
		Buyers: "CSA members, farmers markets, restaurants, grocery stores",
		Demand: "Seasonal with summer peaks",
		Uses:   "Fresh consumption, cooking, preserving",
	},
	"fruits": {
		Buyers: "Farmers markets, u-pick operations, grocery stores",
		Demand: "Highly seasonal",
		Uses:   "Fresh eating, preserves, baking",
	},
	"specialty": {
		Buyers: "Specialty restaurants, ethnic markets, farmers markets",
		Demand: "Niche but consistent",
		Uses:   "Ethnic cuisine, specialty dishes, unique applications",
	},
}

// ContinuousHarvest reports whether the crop is cut weekly or biweekly.
func ContinuousHarvest(c entities.Crop) bool {
	return c.HarvestFrequency == "weekly" || c.HarvestFrequency == "biweekly"
}

// MarketInsights returns the category insights, falling back to vegetables.
func MarketInsights(c entities.Crop) Insights {
	in, ok := categoryInsights[c.Category]
	if !ok {
		in = categoryInsights["vegetables"]
	}
	if ContinuousHarvest(c) {
		in.HarvestTip = fmt.Sprintf("%s offers continuous harvests, making it ideal for establishing regular customer relationships and steady cash flow.", c.Name)
	} else {
		in.HarvestTip = fmt.Sprintf("Plan succession plantings for %s to extend your harvest window and maintain consistent supply to buyers.", c.Name)
	}
	return in
}

// RepresentativePricing is the first price entry, or zeros per lb.
func RepresentativePricing(c entities.Crop) calculator.PriceRange {
	if len(c.Pricing) == 0 {
		return calculator.PriceRange{Unit: "per_lb"}
	}
	p := c.Pricing[0]
	return calculator.PriceRange{Low: p.PriceLow, High: p.PriceHigh, Unit: p.PriceUnit}
}

// NewDetail assembles the detail view of a crop.
func NewDetail(c entities.Crop) *Detail {
	d := &Detail{
		Crop:                  c,
		Insights:              MarketInsights(c),
		RepresentativePricing: RepresentativePricing(c),
		ContinuousHarvest:     ContinuousHarvest(c),
		ClimateSummary:        "Adaptable to most zones",
		SpaceSummary:          c.SpaceRequirements,
	}
	if len(c.ClimateZones) > 0 {
		d.ClimateSummary = "USDA Zones: " + strings.Join(c.ClimateZones, ", ")
	}
	if d.SpaceSummary == "" {
		d.SpaceSummary = "Standard spacing"
	}
	return d
}

// Calculate runs the calculator for sqft square feet at the given price.
func Calculate(c entities.Crop, price calculator.PriceRange, sqft float64) *Calculation {
	avg := (price.Low + price.High) / 2
	out := &Calculation{
		CropID:         c.CropID,
		CropName:       c.Name,
		SqFt:           sqft,
		PriceRange:     price,
		AveragePrice:   avg,
		AnnualYield:    calculator.AnnualYield(sqft, c.YieldPerSqFtLbs, c.HarvestsPerYear),
		AnnualRevenue:  calculator.AnnualRevenue(sqft, c.YieldPerSqFtLbs, avg, c.HarvestsPerYear),
		RevenuePerSqFt: calculator.RevenuePerSqFt(c.YieldPerSqFtLbs, avg, c.HarvestsPerYear),
	}
	out.Display = CalculationDisplay{
		AveragePrice:   calculator.FormatCurrency(avg),
		AnnualRevenue:  calculator.FormatCurrency(out.AnnualRevenue),
		RevenuePerSqFt: calculator.FormatCurrency(out.RevenuePerSqFt),
		PriceUnit:      calculator.FormatPriceUnit(price.Unit),
	}
	return out
}

package calculator

import "greengreen/entities"

// AveragePrice is the midpoint of a quote's price range.
func AveragePrice(p entities.CropPricing) float64 {
	return (p.PriceLow + p.PriceHigh) / 2
}

// RevenuePerSqFt is the yearly revenue one square foot produces.
func RevenuePerSqFt(yieldPerSqFt, pricePerUnit, harvestsPerYear float64) float64 {
	return yieldPerSqFt * pricePerUnit * harvestsPerYear
}

// AnnualRevenue is the yearly revenue of sqft square feet.
func AnnualRevenue(sqft, yieldPerSqFt, pricePerUnit, harvestsPerYear float64) float64 {
	return sqft * yieldPerSqFt * pricePerUnit * harvestsPerYear
}

// AnnualYield is the pounds harvested from sqft square feet per year.
func AnnualYield(sqft, yieldPerSqFt, harvestsPerYear float64) float64 {
	return sqft * yieldPerSqFt * harvestsPerYear
}

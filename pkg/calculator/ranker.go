package calculator

import (
	"sort"

	"greengreen/entities"
)

type PriceRange struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
	Unit string  `json:"unit"`
}

// CalculatedCrop is a crop priced for one grower. It is recomputed on every
// request and never stored.
type CalculatedCrop struct {
	entities.Crop
	AnnualRevenue   float64              `json:"annual_revenue"`
	RevenuePerSqFt  float64              `json:"revenue_per_sqft"`
	PriceRange      PriceRange           `json:"price_range"`
	SelectedPricing entities.CropPricing `json:"selected_pricing"`
}

// Profitability prices crop for profile. It returns nil when the crop has
// no pricing at all.
func Profitability(crop entities.Crop, profile *entities.UserProfile, region string) *CalculatedCrop {
	var channels []string
	if profile != nil {
		channels = profile.SalesChannels
	}
	p := SelectPricing(crop.Pricing, channels, region)
	if p == nil {
		return nil
	}

	avg := AveragePrice(*p)
	sqft := profile.SqFt()
	annual := 0.0
	if sqft > 0 {
		annual = AnnualRevenue(sqft, crop.YieldPerSqFtLbs, avg, crop.HarvestsPerYear)
	}
	return &CalculatedCrop{
		Crop:            crop,
		AnnualRevenue:   annual,
		RevenuePerSqFt:  RevenuePerSqFt(crop.YieldPerSqFtLbs, avg, crop.HarvestsPerYear),
		PriceRange:      PriceRange{Low: p.PriceLow, High: p.PriceHigh, Unit: p.PriceUnit},
		SelectedPricing: *p,
	}
}

// SortByProfitability returns a sorted copy ordered by revenue per square
// foot. The sort is stable so equal crops keep their input order.
func SortByProfitability(crops []CalculatedCrop, descending bool) []CalculatedCrop {
	out := make([]CalculatedCrop, len(crops))
	copy(out, crops)
	sort.SliceStable(out, func(i, j int) bool {
		if descending {
			return out[i].RevenuePerSqFt > out[j].RevenuePerSqFt
		}
		return out[i].RevenuePerSqFt < out[j].RevenuePerSqFt
	})
	return out
}

// Rank filters crops by the profile's growing methods, prices each one and
// orders the result from most to least revenue per square foot. Crops
// without pricing are dropped.
func Rank(crops []entities.Crop, profile *entities.UserProfile, region string) []CalculatedCrop {
	var methods []string
	if profile != nil {
		methods = profile.GrowingMethods
	}
	filtered := FilterByGrowingMethods(crops, methods)

	calculated := make([]CalculatedCrop, 0, len(filtered))
	for _, c := range filtered {
		if cc := Profitability(c, profile, region); cc != nil {
			calculated = append(calculated, *cc)
		}
	}
	return SortByProfitability(calculated, true)
}

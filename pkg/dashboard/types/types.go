package types

import (
	"greengreen/pkg/calculator"
	"greengreen/pkg/planting"
)

// PlantThisWeekLimit caps the recommendations shown on the dashboard.
const PlantThisWeekLimit = 6

type View struct {
	HasProfile    bool                                `json:"has_profile"`
	Region        string                              `json:"region"`
	Total         int                                 `json:"total"`
	Count         int                                 `json:"count"`
	Crops         []calculator.CalculatedCrop         `json:"crops"`
	PlantThisWeek []planting.ProfitableRecommendation `json:"plant_this_week"`
}

package planting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greengreen/entities"
	"greengreen/pkg/calculator"
)

var april = time.Date(2026, time.April, 10, 8, 0, 0, 0, time.UTC)

func TestWeeklyRecommendations(t *testing.T) {
	crops := []entities.Crop{
		{CropID: 1, Name: "year-round", DaysToHarvest: 10},
		{CropID: 2, Name: "tomato", DaysToHarvest: 60, GrowingMethods: []string{"outdoor"},
			PlantingWindows: []entities.PlantingWindow{window("southwest", 3, 5, 6, 10)}},
		{CropID: 3, Name: "basil", DaysToHarvest: 28, GrowingMethods: []string{"outdoor", "greenhouse"},
			PlantingWindows: []entities.PlantingWindow{window("southwest", 3, 8, 4, 10)}},
		{CropID: 4, Name: "garlic", DaysToHarvest: 240,
			PlantingWindows: []entities.PlantingWindow{window("southwest", 10, 11, 6, 7)}},
		{CropID: 5, Name: "oyster", DaysToHarvest: 14, GrowingMethods: []string{"indoor"},
			PlantingWindows: []entities.PlantingWindow{window("southwest", 1, 12, 1, 12)}},
	}

	got := WeeklyRecommendations(crops, Options{Now: april, Region: "southwest", GrowingMethods: []string{"outdoor"}})
	require.Len(t, got, 3)

	// tomato: 1/3 through -> 3; basil: 1/6 -> 2; year-round: no window -> 0.
	assert.Equal(t, "tomato", got[0].Crop.Name)
	assert.Equal(t, 3, got[0].Urgency)
	assert.Equal(t, "basil", got[1].Crop.Name)
	assert.Equal(t, "year-round", got[2].Crop.Name)
	assert.Equal(t, 0, got[2].Urgency)
	assert.Equal(t, april.AddDate(0, 0, 60), got[0].ExpectedHarvestDate)
}

func TestWeeklyRecommendationsTieBreaksOnDaysToHarvest(t *testing.T) {
	w := []entities.PlantingWindow{window("", 4, 9, 4, 12)}
	crops := []entities.Crop{
		{Name: "slow", DaysToHarvest: 50, PlantingWindows: w},
		{Name: "fast", DaysToHarvest: 20, PlantingWindows: w},
	}
	got := WeeklyRecommendations(crops, Options{Now: april})
	require.Len(t, got, 2)
	assert.Equal(t, "fast", got[0].Crop.Name)
}

func TestWeeklyRecommendationsWithProfitability(t *testing.T) {
	mk := func(id uint, name string, days int, rev float64) calculator.CalculatedCrop {
		return calculator.CalculatedCrop{Crop: entities.Crop{CropID: id, Name: name, DaysToHarvest: days}, RevenuePerSqFt: rev}
	}
	calculated := []calculator.CalculatedCrop{
		mk(1, "microgreens", 10, 4000),
		mk(2, "tomato", 60, 40),
		mk(3, "basil", 28, 110),
		mk(4, "no-window-row", 20, 9000),
		mk(5, "garlic", 240, 30),
		mk(6, "lettuce", 45, 200),
	}
	windows := map[uint][]entities.PlantingWindow{
		1: {window("southwest", 1, 12, 1, 12)},
		2: {window("southwest", 3, 5, 6, 10)},
		3: {window("southwest", 3, 8, 4, 10)},
		5: {window("southwest", 10, 11, 6, 7)},
		6: {window("southwest", 4, 6, 5, 8)},
	}

	got := WeeklyRecommendationsWithProfitability(calculated, windows, Options{Now: april, Region: "southwest"})
	names := make([]string, len(got))
	for i, r := range got {
		names[i] = r.Name
	}
	// tomato 3; microgreens (3/12 through) 2; lettuce start month 2; basil 2.
	assert.Equal(t, []string{"tomato", "microgreens", "lettuce", "basil"}, names)
	assert.Equal(t, "Good time to plant", got[0].UrgencyMessage)
}

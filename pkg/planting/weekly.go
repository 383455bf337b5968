package planting

import (
	"sort"
	"time"

	"greengreen/entities"
	"greengreen/pkg/calculator"
)

// Options describe the grower a recommendation pass is computed for. A zero
// Now means time.Now; an empty Region means the default region.
type Options struct {
	Now            time.Time
	Region         string
	GrowingMethods []string
}

func (o Options) now() time.Time {
	if o.Now.IsZero() {
		return time.Now()
	}
	return o.Now
}

type Recommendation struct {
	Crop                entities.Crop `json:"crop"`
	Urgency             int           `json:"urgency"`
	UrgencyMessage      string        `json:"urgency_message"`
	ExpectedHarvestDate time.Time     `json:"expected_harvest_date"`
}

type ProfitableRecommendation struct {
	calculator.CalculatedCrop
	Urgency             int       `json:"urgency"`
	UrgencyMessage      string    `json:"urgency_message"`
	ExpectedHarvestDate time.Time `json:"expected_harvest_date"`
}

// plantableNow applies the planting and harvest gates shared by both
// recommendation passes.
func plantableNow(windows []entities.PlantingWindow, month, daysToHarvest int, region string, now time.Time) bool {
	return IsPlantable(windows, month, region) &&
		HasTimeToHarvest(windows, month, daysToHarvest, region, now)
}

// WeeklyRecommendations lists the crops (with their PlantingWindows loaded)
// that can be planted now, most urgent first and then quickest to harvest.
func WeeklyRecommendations(crops []entities.Crop, opts Options) []Recommendation {
	now := opts.now()
	month := CurrentMonth(now)

	out := make([]Recommendation, 0, len(crops))
	for _, c := range crops {
		if !calculator.MatchesGrowingMethods(c, opts.GrowingMethods) {
			continue
		}
		if !plantableNow(c.PlantingWindows, month, c.DaysToHarvest, opts.Region, now) {
			continue
		}
		u := Urgency(c.PlantingWindows, month, opts.Region)
		out = append(out, Recommendation{
			Crop:                c,
			Urgency:             u,
			UrgencyMessage:      UrgencyMessage(u),
			ExpectedHarvestDate: ExpectedHarvestDate(now, c.DaysToHarvest),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Urgency != out[j].Urgency {
			return out[i].Urgency > out[j].Urgency
		}
		return out[i].Crop.DaysToHarvest < out[j].Crop.DaysToHarvest
	})
	return out
}

// WeeklyRecommendationsWithProfitability filters already ranked crops down
// to those plantable now, most urgent first and then most profitable. Crops
// missing from windowsByCrop are left out.
func WeeklyRecommendationsWithProfitability(calculated []calculator.CalculatedCrop, windowsByCrop map[uint][]entities.PlantingWindow, opts Options) []ProfitableRecommendation {
	now := opts.now()
	month := CurrentMonth(now)

	out := make([]ProfitableRecommendation, 0, len(calculated))
	for _, c := range calculated {
		windows, ok := windowsByCrop[c.CropID]
		if !ok {
			continue
		}
		if !plantableNow(windows, month, c.DaysToHarvest, opts.Region, now) {
			continue
		}
		u := Urgency(windows, month, opts.Region)
		out = append(out, ProfitableRecommendation{
			CalculatedCrop:      c,
			Urgency:             u,
			UrgencyMessage:      UrgencyMessage(u),
			ExpectedHarvestDate: ExpectedHarvestDate(now, c.DaysToHarvest),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Urgency != out[j].Urgency {
			return out[i].Urgency > out[j].Urgency
		}
		return out[i].RevenuePerSqFt > out[j].RevenuePerSqFt
	})
	return out
}

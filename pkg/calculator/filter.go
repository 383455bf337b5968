package calculator

import (
	"errors"
	"fmt"
	"slices"
)

var ErrInvalidFilter = errors.New("invalid filter")

// HarvestTimeRanges are the accepted Filter.HarvestTime values.
var HarvestTimeRanges = []string{"<30", "30-60", "60-90", "90+"}

// Filter narrows a ranked list. Empty fields match everything.
type Filter struct {
	Category    string `query:"category"`
	Difficulty  string `query:"difficulty"`
	HarvestTime string `query:"harvest_time"`
}

func (f Filter) Validate() error {
	if f.HarvestTime != "" && !slices.Contains(HarvestTimeRanges, f.HarvestTime) {
		return fmt.Errorf("%w: harvest_time %q", ErrInvalidFilter, f.HarvestTime)
	}
	return nil
}

// Match reports whether crop passes every set field.
func (f Filter) Match(crop CalculatedCrop) bool {
	if f.Category != "" && crop.Category != f.Category {
		return false
	}
	if f.Difficulty != "" && crop.DifficultyLevel != f.Difficulty {
		return false
	}
	days := crop.DaysToHarvest
	switch f.HarvestTime {
	case "<30":
		return days < 30
	case "30-60":
		return days >= 30 && days <= 60
	case "60-90":
		return days >= 60 && days <= 90
	case "90+":
		return days >= 90
	}
	return true
}

// Apply keeps the crops matching f, preserving order.
func (f Filter) Apply(crops []CalculatedCrop) []CalculatedCrop {
	out := make([]CalculatedCrop, 0, len(crops))
	for _, c := range crops {
		if f.Match(c) {
			out = append(out, c)
		}
	}
	return out
}

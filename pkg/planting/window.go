// Package planting decides what a grower can plant this week from
// month-ranged planting windows. Windows may wrap the year boundary
// (start month greater than end month).
package planting

import (
	"time"

	"greengreen/entities"
	"greengreen/pkg/calculator"
)

// CurrentMonth returns t's month as 1..12.
func CurrentMonth(t time.Time) int {
	return int(t.Month())
}

// SelectWindow returns the window for region: an exact region match first,
// then a region-agnostic window.
func SelectWindow(windows []entities.PlantingWindow, region string) (entities.PlantingWindow, bool) {
	if region == "" {
		region = calculator.DefaultRegion
	}
	for _, w := range windows {
		if w.Region == region {
			return w, true
		}
	}
	for _, w := range windows {
		if w.Region == "" {
			return w, true
		}
	}
	return entities.PlantingWindow{}, false
}

// inRange tests month against the circular range [start, end].
func inRange(month, start, end int) bool {
	if start <= end {
		return month >= start && month <= end
	}
	return month >= start || month <= end
}

// IsPlantable reports whether month falls inside the crop's planting window.
// Crops without any window data are treated as plantable all year; crops
// whose windows all belong to other regions are not.
func IsPlantable(windows []entities.PlantingWindow, month int, region string) bool {
	if len(windows) == 0 {
		return true
	}
	w, ok := SelectWindow(windows, region)
	if !ok {
		return false
	}
	return inRange(month, w.PlantingStartMonth, w.PlantingEndMonth)
}

// Urgency scores how pressing planting is, 1..5 with 5 the last chance.
// The window's first month is always 2; later months are banded by how far
// through the window they sit. Without a window the score is 0.
func Urgency(windows []entities.PlantingWindow, month int, region string) int {
	w, ok := SelectWindow(windows, region)
	if !ok {
		return 0
	}
	start, end := w.PlantingStartMonth, w.PlantingEndMonth
	if month == start {
		return 2
	}

	size := end - start + 1
	if end < start {
		size = 12 - start + end + 1
	}
	pos := month - start
	if month < start {
		pos = 12 - start + month
	}

	through := float64(pos) / float64(size)
	switch {
	case through > 0.75:
		return 5
	case through > 0.5:
		return 4
	case through > 0.25:
		return 3
	default:
		return 2
	}
}

// ExpectedHarvestDate is from plus daysToHarvest days.
func ExpectedHarvestDate(from time.Time, daysToHarvest int) time.Time {
	return from.AddDate(0, 0, daysToHarvest)
}

// HasTimeToHarvest reports whether a crop planted in month would mature by
// the window's harvest end month. The planting date is approximated as ref
// moved into month (same year and day of month), so results near month
// boundaries are coarse.
func HasTimeToHarvest(windows []entities.PlantingWindow, month, daysToHarvest int, region string, ref time.Time) bool {
	w, ok := SelectWindow(windows, region)
	if !ok {
		return true
	}

	anchor := time.Date(ref.Year(), time.Month(month), ref.Day(), 0, 0, 0, 0, ref.Location())
	harvestMonth := CurrentMonth(ExpectedHarvestDate(anchor, daysToHarvest))

	if harvestMonth <= w.HarvestEndMonth {
		return true
	}
	// TODO: compare full dates instead of months so a harvest that slips
	// into the next year is judged against the following season.
	if w.HarvestEndMonth < month && harvestMonth <= w.HarvestEndMonth {
		return true
	}
	return false
}

var urgencyMessages = map[int]string{
	5: "Last chance! Plant ASAP",
	4: "Plant soon - window closing",
	3: "Good time to plant",
	2: "Perfect timing",
	1: "Early window - plenty of time",
}

// UrgencyMessage is the grower-facing label for an urgency score.
func UrgencyMessage(urgency int) string {
	if m, ok := urgencyMessages[urgency]; ok {
		return m
	}
	return "Plantable now"
}

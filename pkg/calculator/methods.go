package calculator

import (
	"slices"

	"greengreen/entities"
)

// MatchesGrowingMethods reports whether a crop can be grown with any of the
// grower's methods. Crops that declare no methods match everything, and so
// does an empty method set.
func MatchesGrowingMethods(crop entities.Crop, methods []string) bool {
	if len(methods) == 0 || len(crop.GrowingMethods) == 0 {
		return true
	}
	for _, m := range crop.GrowingMethods {
		if slices.Contains(methods, m) {
			return true
		}
	}
	return false
}

// FilterByGrowingMethods keeps the crops matching methods, in input order.
func FilterByGrowingMethods(crops []entities.Crop, methods []string) []entities.Crop {
	if len(methods) == 0 {
		return crops
	}
	out := make([]entities.Crop, 0, len(crops))
	for _, c := range crops {
		if MatchesGrowingMethods(c, methods) {
			out = append(out, c)
		}
	}
	return out
}

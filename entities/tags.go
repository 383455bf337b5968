package entities

import "slices"

// Tag values accepted by the API and the catalog loaders.
var (
	GrowingMethods   = []string{"outdoor", "greenhouse", "hydroponic", "indoor"}
	SalesChannels    = []string{"farmers_market", "wholesale", "retail", "csa"}
	ExperienceLevels = []string{"beginner", "intermediate", "advanced"}
	CropCategories   = []string{"microgreens", "herbs", "vegetables", "fruits", "specialty"}
	DifficultyLevels = []string{"easy", "medium", "hard"}
	PriceUnits       = []string{"per_lb", "per_oz", "per_bunch", "per_unit"}
	UserCropStatuses = []string{"planned", "planted", "harvested", "removed"}
)

var channelLabels = map[string]string{
	"farmers_market": "Farmers' Market",
	"wholesale":      "Wholesale/Restaurant",
	"retail":         "Retail/Grocery",
	"csa":            "CSA/Direct",
}

// ChannelLabel returns the display name of a sales channel, or the tag itself.
func ChannelLabel(channel string) string {
	if l, ok := channelLabels[channel]; ok {
		return l
	}
	return channel
}

// AllIn reports whether every value is one of allowed.
func AllIn(values, allowed []string) bool {
	for _, v := range values {
		if !slices.Contains(allowed, v) {
			return false
		}
	}
	return true
}

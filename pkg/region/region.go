// Package region maps a grower's US state to the region tag used by pricing
// and planting windows.
package region

import "strings"

var byState = map[string]string{
	"AZ": "southwest", "NM": "southwest", "TX": "southwest", "OK": "southwest", "NV": "southwest", "UT": "southwest", "CO": "southwest",
	"CA": "west", "HI": "west",
	"OR": "northwest", "WA": "northwest", "ID": "northwest", "MT": "northwest", "WY": "northwest", "AK": "northwest",
	"ND": "midwest", "SD": "midwest", "NE": "midwest", "KS": "midwest", "MN": "midwest", "IA": "midwest", "MO": "midwest",
	"WI": "midwest", "IL": "midwest", "IN": "midwest", "MI": "midwest", "OH": "midwest",
	"ME": "northeast", "NH": "northeast", "VT": "northeast", "MA": "northeast", "RI": "northeast", "CT": "northeast",
	"NY": "northeast", "NJ": "northeast", "PA": "northeast", "DE": "northeast", "MD": "northeast", "DC": "northeast",
	"VA": "southeast", "WV": "southeast", "KY": "southeast", "TN": "southeast", "NC": "southeast", "SC": "southeast",
	"GA": "southeast", "FL": "southeast", "AL": "southeast", "MS": "southeast", "LA": "southeast", "AR": "southeast",
}

// ForState returns the region of a two-letter state code, or fallback when
// the state is empty or unknown.
func ForState(state, fallback string) string {
	if r, ok := byState[strings.ToUpper(strings.TrimSpace(state))]; ok {
		return r
	}
	return fallback
}

package calculator

import (
	"math"

	"github.com/dustin/go-humanize"
)

var unitSuffix = map[string]string{
	"per_lb":    "/lb",
	"per_oz":    "/oz",
	"per_bunch": "/bunch",
	"per_unit":  "/unit",
}

// FormatCurrency renders whole US dollars, e.g. "$422,500".
func FormatCurrency(amount float64) string {
	n := int64(math.Round(amount))
	if n < 0 {
		return "-$" + humanize.Comma(-n)
	}
	return "$" + humanize.Comma(n)
}

// FormatPriceUnit renders a price unit tag as a suffix ("/lb"); unknown tags
// pass through.
func FormatPriceUnit(unit string) string {
	if s, ok := unitSuffix[unit]; ok {
		return s
	}
	return unit
}

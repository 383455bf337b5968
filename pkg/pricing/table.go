// Package pricing imports market price quotes from HTML price tables.
package pricing

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var ErrNoTable = errors.New("no price table found")

// Row is one parsed table row. Line is 1-based and counts the header.
type Row struct {
	Line    int
	Crop    string
	Channel string
	Low     float64
	High    float64
	Unit    string
	Region  string
	// Err is set when the row could not be parsed; the other fields are then
	// best effort.
	Err error
}

func norm(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "\uFEFF")
	s = strings.ToLower(s)
	for _, r := range []string{" ", "-", "_", "'", "."} {
		s = strings.ReplaceAll(s, r, "")
	}
	return s
}

var columnAliases = map[string][]string{
	"crop":    {"crop", "commodity", "item", "product", "name"},
	"channel": {"channel", "saleschannel", "market", "outlet"},
	"low":     {"low", "pricelow", "min", "lowprice"},
	"high":    {"high", "pricehigh", "max", "highprice"},
	"unit":    {"unit", "priceunit", "per"},
	"region":  {"region", "area"},
}

// ParseTable reads the first <table> of an HTML document. Crop, low and high
// columns are required; channel, unit and region are optional.
func ParseTable(r io.Reader) ([]Row, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, ErrNoTable
	}

	trs := table.Find("tr")
	if trs.Length() == 0 {
		return nil, ErrNoTable
	}
	var head []string
	trs.First().Find("th,td").Each(func(_ int, s *goquery.Selection) {
		head = append(head, norm(s.Text()))
	})
	col := map[string]int{}
	for key, aliases := range columnAliases {
		col[key] = -1
		for i, h := range head {
			for _, a := range aliases {
				if h == a && col[key] == -1 {
					col[key] = i
				}
			}
		}
	}
	if col["crop"] == -1 || col["low"] == -1 || col["high"] == -1 {
		return nil, fmt.Errorf("%w: need crop, low and high columns, found %v", ErrNoTable, head)
	}

	var rows []Row
	trs.Slice(1, trs.Length()).Each(func(i int, tr *goquery.Selection) {
		var cells []string
		tr.Find("th,td").Each(func(_ int, s *goquery.Selection) {
			cells = append(cells, strings.TrimSpace(s.Text()))
		})
		if len(cells) == 0 {
			return
		}
		get := func(key string) string {
			idx := col[key]
			if idx < 0 || idx >= len(cells) {
				return ""
			}
			return cells[idx]
		}
		row := Row{
			Line:    i + 2,
			Crop:    get("crop"),
			Channel: Channel(get("channel")),
			Unit:    Unit(get("unit")),
			Region:  strings.ToLower(get("region")),
		}
		var perr error
		if row.Low, perr = price(get("low")); perr == nil {
			row.High, perr = price(get("high"))
		}
		row.Err = perr
		rows = append(rows, row)
	})
	return rows, nil
}

func price(s string) (float64, error) {
	s = strings.NewReplacer("$", "", ",", "", " ", "").Replace(s)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("price %q is not a number", s)
	}
	return v, nil
}

// Channel maps a channel tag or display label to its tag. Empty input means
// farmers_market.
func Channel(s string) string {
	n := norm(s)
	if i := strings.Index(n, "/"); i > 0 {
		n = n[:i]
	}
	switch n {
	case "", "farmersmarket", "farmers", "market":
		return "farmers_market"
	case "wholesale", "restaurant":
		return "wholesale"
	case "retail", "grocery":
		return "retail"
	case "csa", "direct":
		return "csa"
	}
	return strings.ToLower(strings.TrimSpace(s))
}

// Unit maps "lb", "/lb", "per lb" and similar to a price unit tag. Empty
// input means per_lb.
func Unit(s string) string {
	n := strings.TrimPrefix(strings.TrimPrefix(norm(s), "per"), "/")
	switch n {
	case "", "lb", "lbs", "pound":
		return "per_lb"
	case "oz", "ounce":
		return "per_oz"
	case "bunch", "bu":
		return "per_bunch"
	case "unit", "each", "ea", "pint", "clamshell":
		return "per_unit"
	}
	return strings.ToLower(strings.TrimSpace(s))
}

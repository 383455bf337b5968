package seed

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Workbook sheet names. Only crops is required.
const (
	SheetCrops   = "crops"
	SheetPricing = "pricing"
	SheetWindows = "windows"
	SheetSeeds   = "seeds"
)

var sheetHeaders = map[string][]string{
	SheetCrops: {"name", "category", "scientific_name", "description", "difficulty_level", "days_to_harvest",
		"harvest_frequency", "harvests_per_year", "yield_per_sqft_lbs", "space_requirements",
		"climate_zones", "growing_methods", "image_url"},
	SheetPricing: {"crop", "channel", "low", "high", "unit", "region", "notes"},
	SheetWindows: {"crop", "region", "climate_zone", "plant_start", "plant_end", "harvest_start", "harvest_end", "notes"},
	SheetSeeds:   {"crop", "supplier", "url", "variety", "price_range", "notes", "affiliate"},
}

func norm(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "\uFEFF")
	s = strings.ToLower(s)
	r := strings.NewReplacer(" ", "", "-", "", "_", "", "(", "", ")", "")
	return r.Replace(s)
}

// table is one sheet with a header row resolved to column indexes.
type table struct {
	name string
	cols map[string]int
	rows [][]string
}

func readTable(x *excelize.File, name string) (*table, error) {
	rows, err := x.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", name, err)
	}
	t := &table{name: name, cols: map[string]int{}}
	if len(rows) == 0 {
		return t, nil
	}
	for i, h := range rows[0] {
		t.cols[norm(h)] = i
	}
	t.rows = rows[1:]
	return t, nil
}

func (t *table) require(keys ...string) error {
	var missing []string
	for _, k := range keys {
		if _, ok := t.cols[norm(k)]; !ok {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: sheet %s missing columns %v", ErrInvalidCatalog, t.name, missing)
	}
	return nil
}

// cell returns the trimmed value of column key in row, or "" when the row is
// short or the column absent.
func (t *table) cell(row []string, key string) string {
	i, ok := t.cols[norm(key)]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func blank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func list(s string) []string {
	var out []string
	for _, v := range strings.Split(s, ",") {
		if v = strings.ToLower(strings.TrimSpace(v)); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// rowParser collects numeric parse failures for one sheet row.
type rowParser struct {
	t    *table
	row  []string
	line int
	err  error
}

func (p *rowParser) str(key string) string { return p.t.cell(p.row, key) }

func (p *rowParser) float(key string) float64 {
	v := strings.TrimPrefix(p.str(key), "$")
	if v == "" || p.err != nil {
		return 0
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		p.err = fmt.Errorf("%w: sheet %s row %d: %s: %q is not a number", ErrInvalidCatalog, p.t.name, p.line, key, v)
	}
	return f
}

func (p *rowParser) integer(key string) int {
	return int(p.float(key))
}

// LoadXLSX reads a catalog workbook. Pricing, window and seed rows reference
// crops by name from the crops sheet.
func LoadXLSX(r io.Reader) (*Catalog, error) {
	x, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer x.Close()

	crops, err := readTable(x, SheetCrops)
	if err != nil {
		return nil, err
	}
	if err := crops.require("name", "category", "difficulty_level", "days_to_harvest"); err != nil {
		return nil, err
	}

	c := &Catalog{}
	index := map[string]int{}
	for i, row := range crops.rows {
		if blank(row) {
			continue
		}
		p := &rowParser{t: crops, row: row, line: i + 2}
		rec := CropRecord{
			Name:              p.str("name"),
			Category:          strings.ToLower(p.str("category")),
			ScientificName:    p.str("scientific_name"),
			Description:       p.str("description"),
			DifficultyLevel:   strings.ToLower(p.str("difficulty_level")),
			DaysToHarvest:     p.integer("days_to_harvest"),
			HarvestFrequency:  strings.ToLower(p.str("harvest_frequency")),
			HarvestsPerYear:   p.float("harvests_per_year"),
			YieldPerSqFtLbs:   p.float("yield_per_sqft_lbs"),
			SpaceRequirements: p.str("space_requirements"),
			ClimateZones:      list(p.str("climate_zones")),
			GrowingMethods:    list(p.str("growing_methods")),
			ImageURL:          p.str("image_url"),
		}
		if p.err != nil {
			return nil, p.err
		}
		index[strings.ToLower(rec.Name)] = len(c.Crops)
		c.Crops = append(c.Crops, rec)
	}

	// each child sheet is optional; rows attach to their crop by name
	children := []struct {
		sheet string
		need  []string
		add   func(rec *CropRecord, p *rowParser)
	}{
		{SheetPricing, []string{"crop", "channel", "low", "high", "unit"}, func(rec *CropRecord, p *rowParser) {
			rec.Pricing = append(rec.Pricing, PriceRecord{
				Channel: strings.ToLower(p.str("channel")),
				Low:     p.float("low"),
				High:    p.float("high"),
				Unit:    strings.ToLower(p.str("unit")),
				Region:  strings.ToLower(p.str("region")),
				Notes:   p.str("notes"),
			})
		}},
		{SheetWindows, []string{"crop", "plant_start", "plant_end"}, func(rec *CropRecord, p *rowParser) {
			rec.PlantingWindows = append(rec.PlantingWindows, WindowRecord{
				Region:      strings.ToLower(p.str("region")),
				ClimateZone: p.str("climate_zone"),
				Plant:       [2]int{p.integer("plant_start"), p.integer("plant_end")},
				Harvest:     [2]int{p.integer("harvest_start"), p.integer("harvest_end")},
				Notes:       p.str("notes"),
			})
		}},
		{SheetSeeds, []string{"crop", "supplier"}, func(rec *CropRecord, p *rowParser) {
			aff, _ := strconv.ParseBool(p.str("affiliate"))
			rec.SeedSources = append(rec.SeedSources, SourceRecord{
				Supplier:   p.str("supplier"),
				URL:        p.str("url"),
				Variety:    p.str("variety"),
				PriceRange: p.str("price_range"),
				Notes:      p.str("notes"),
				Affiliate:  aff,
			})
		}},
	}
	for _, ch := range children {
		if idx, _ := x.GetSheetIndex(ch.sheet); idx < 0 {
			continue
		}
		t, err := readTable(x, ch.sheet)
		if err != nil {
			return nil, err
		}
		if len(t.rows) == 0 {
			continue
		}
		if err := t.require(ch.need...); err != nil {
			return nil, err
		}
		for i, row := range t.rows {
			if blank(row) {
				continue
			}
			p := &rowParser{t: t, row: row, line: i + 2}
			name := p.str("crop")
			ci, ok := index[strings.ToLower(name)]
			if !ok {
				return nil, fmt.Errorf("%w: sheet %s row %d: unknown crop %q", ErrInvalidCatalog, t.name, p.line, name)
			}
			ch.add(&c.Crops[ci], p)
			if p.err != nil {
				return nil, p.err
			}
		}
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// WriteXLSX writes the catalog in the layout LoadXLSX reads.
func WriteXLSX(w io.Writer, c *Catalog) error {
	x := excelize.NewFile()
	defer x.Close()

	if err := x.SetSheetName("Sheet1", SheetCrops); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	for _, s := range []string{SheetPricing, SheetWindows, SheetSeeds} {
		if _, err := x.NewSheet(s); err != nil {
			return fmt.Errorf("add sheet %s: %w", s, err)
		}
	}

	rows := map[string][][]any{}
	for _, r := range c.Crops {
		rows[SheetCrops] = append(rows[SheetCrops], []any{
			r.Name, r.Category, r.ScientificName, r.Description, r.DifficultyLevel, r.DaysToHarvest,
			r.HarvestFrequency, r.HarvestsPerYear, r.YieldPerSqFtLbs, r.SpaceRequirements,
			strings.Join(r.ClimateZones, ","), strings.Join(r.GrowingMethods, ","), r.ImageURL,
		})
		for _, p := range r.Pricing {
			rows[SheetPricing] = append(rows[SheetPricing], []any{r.Name, p.Channel, p.Low, p.High, p.Unit, p.Region, p.Notes})
		}
		for _, pw := range r.PlantingWindows {
			rows[SheetWindows] = append(rows[SheetWindows], []any{
				r.Name, pw.Region, pw.ClimateZone, pw.Plant[0], pw.Plant[1], pw.Harvest[0], pw.Harvest[1], pw.Notes,
			})
		}
		for _, s := range r.SeedSources {
			rows[SheetSeeds] = append(rows[SheetSeeds], []any{r.Name, s.Supplier, s.URL, s.Variety, s.PriceRange, s.Notes, s.Affiliate})
		}
	}

	for sheet, header := range sheetHeaders {
		head := make([]any, len(header))
		for i, h := range header {
			head[i] = h
		}
		if err := x.SetSheetRow(sheet, "A1", &head); err != nil {
			return fmt.Errorf("write %s header: %w", sheet, err)
		}
		for i, row := range rows[sheet] {
			cell, _ := excelize.CoordinatesToCellName(1, i+2)
			if err := x.SetSheetRow(sheet, cell, &row); err != nil {
				return fmt.Errorf("write %s row %d: %w", sheet, i+2, err)
			}
		}
	}
	if _, err := x.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// Package seed loads the crop catalog from YAML or XLSX and inserts it into
// the database.
package seed

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"greengreen/entities"
)

//go:embed catalog.yaml
var defaultCatalog []byte

var ErrInvalidCatalog = errors.New("invalid catalog")

type Catalog struct {
	Crops []CropRecord `yaml:"crops"`
}

type CropRecord struct {
	Name              string   `yaml:"name"`
	Category          string   `yaml:"category"`
	ScientificName    string   `yaml:"scientific_name"`
	Description       string   `yaml:"description"`
	DifficultyLevel   string   `yaml:"difficulty_level"`
	DaysToHarvest     int      `yaml:"days_to_harvest"`
	HarvestFrequency  string   `yaml:"harvest_frequency"`
	HarvestsPerYear   float64  `yaml:"harvests_per_year"`
	YieldPerSqFtLbs   float64  `yaml:"yield_per_sqft_lbs"`
	SpaceRequirements string   `yaml:"space_requirements"`
	ClimateZones      []string `yaml:"climate_zones"`
	GrowingMethods    []string `yaml:"growing_methods"`
	ImageURL          string   `yaml:"image_url"`

	Pricing         []PriceRecord  `yaml:"pricing"`
	PlantingWindows []WindowRecord `yaml:"planting_windows"`
	SeedSources     []SourceRecord `yaml:"seed_sources"`
}

type PriceRecord struct {
	Channel string  `yaml:"channel"`
	Low     float64 `yaml:"low"`
	High    float64 `yaml:"high"`
	Unit    string  `yaml:"unit"`
	Region  string  `yaml:"region"`
	Notes   string  `yaml:"notes"`
}

// WindowRecord months are [start, end] pairs.
type WindowRecord struct {
	Region      string `yaml:"region"`
	ClimateZone string `yaml:"climate_zone"`
	Plant       [2]int `yaml:"plant"`
	Harvest     [2]int `yaml:"harvest"`
	Notes       string `yaml:"notes"`
}

type SourceRecord struct {
	Supplier   string `yaml:"supplier"`
	URL        string `yaml:"url"`
	Variety    string `yaml:"variety"`
	PriceRange string `yaml:"price_range"`
	Notes      string `yaml:"notes"`
	Affiliate  bool   `yaml:"affiliate"`
}

// Default returns the catalog shipped with the binary.
func Default() (*Catalog, error) {
	return LoadYAML(bytes.NewReader(defaultCatalog))
}

func LoadYAML(r io.Reader) (*Catalog, error) {
	var c Catalog
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadFile picks the loader by extension: .yaml, .yml or .xlsx.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(f)
	case ".xlsx":
		return LoadXLSX(f)
	default:
		return nil, fmt.Errorf("%w: unsupported file type %q", ErrInvalidCatalog, filepath.Ext(path))
	}
}

// Validate checks every record and reports all problems at once.
func (c *Catalog) Validate() error {
	if len(c.Crops) == 0 {
		return fmt.Errorf("%w: no crops", ErrInvalidCatalog)
	}
	var errs []error
	seen := map[string]bool{}
	for i, r := range c.Crops {
		key := strings.ToLower(strings.TrimSpace(r.Name))
		if key != "" && seen[key] {
			errs = append(errs, fmt.Errorf("crop %d (%s): duplicate name", i+1, r.Name))
		}
		seen[key] = true
		for _, msg := range r.problems() {
			errs = append(errs, fmt.Errorf("crop %d (%s): %s", i+1, r.Name, msg))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidCatalog, errors.Join(errs...))
	}
	return nil
}

func (r CropRecord) problems() []string {
	var out []string
	if strings.TrimSpace(r.Name) == "" {
		out = append(out, "name is required")
	}
	if !slices.Contains(entities.CropCategories, r.Category) {
		out = append(out, fmt.Sprintf("unknown category %q", r.Category))
	}
	if !slices.Contains(entities.DifficultyLevels, r.DifficultyLevel) {
		out = append(out, fmt.Sprintf("unknown difficulty %q", r.DifficultyLevel))
	}
	if r.DaysToHarvest <= 0 {
		out = append(out, "days_to_harvest must be positive")
	}
	if !finite(r.HarvestsPerYear) || !finite(r.YieldPerSqFtLbs) {
		out = append(out, "yield figures must be finite numbers")
	} else if r.HarvestsPerYear < 0 || r.YieldPerSqFtLbs < 0 {
		out = append(out, "yield figures must not be negative")
	}
	if !entities.AllIn(r.GrowingMethods, entities.GrowingMethods) {
		out = append(out, fmt.Sprintf("unknown growing method in %v", r.GrowingMethods))
	}
	for _, p := range r.Pricing {
		if !slices.Contains(entities.SalesChannels, p.Channel) {
			out = append(out, fmt.Sprintf("unknown channel %q", p.Channel))
		}
		if !slices.Contains(entities.PriceUnits, p.Unit) {
			out = append(out, fmt.Sprintf("unknown unit %q", p.Unit))
		}
		if !finite(p.Low) || !finite(p.High) || p.Low < 0 || p.Low > p.High {
			out = append(out, fmt.Sprintf("%s price range %v..%v", p.Channel, p.Low, p.High))
		}
	}
	for _, w := range r.PlantingWindows {
		for _, m := range []int{w.Plant[0], w.Plant[1], w.Harvest[0], w.Harvest[1]} {
			if m < 1 || m > 12 {
				out = append(out, fmt.Sprintf("window %s: month %d out of range", w.Region, m))
				break
			}
		}
	}
	return out
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// Entity converts a record to a crop with its associations. Prices are
// stamped as manual data updated at now.
func (r CropRecord) Entity(now time.Time) entities.Crop {
	c := entities.Crop{
		Name:              strings.TrimSpace(r.Name),
		Category:          r.Category,
		ScientificName:    r.ScientificName,
		Description:       r.Description,
		DifficultyLevel:   r.DifficultyLevel,
		DaysToHarvest:     r.DaysToHarvest,
		HarvestFrequency:  r.HarvestFrequency,
		HarvestsPerYear:   r.HarvestsPerYear,
		YieldPerSqFtLbs:   r.YieldPerSqFtLbs,
		SpaceRequirements: r.SpaceRequirements,
		ClimateZones:      r.ClimateZones,
		GrowingMethods:    r.GrowingMethods,
		ImageURL:          r.ImageURL,
	}
	for _, p := range r.Pricing {
		c.Pricing = append(c.Pricing, entities.CropPricing{
			SalesChannel: p.Channel,
			PriceLow:     p.Low,
			PriceHigh:    p.High,
			PriceUnit:    p.Unit,
			Region:       strings.ToLower(p.Region),
			DataSource:   "manual",
			Notes:        p.Notes,
			LastUpdated:  now,
		})
	}
	for _, w := range r.PlantingWindows {
		c.PlantingWindows = append(c.PlantingWindows, entities.PlantingWindow{
			Region:             strings.ToLower(w.Region),
			ClimateZone:        w.ClimateZone,
			PlantingStartMonth: w.Plant[0],
			PlantingEndMonth:   w.Plant[1],
			HarvestStartMonth:  w.Harvest[0],
			HarvestEndMonth:    w.Harvest[1],
			Notes:              w.Notes,
		})
	}
	for _, s := range r.SeedSources {
		c.SeedSources = append(c.SeedSources, entities.SeedSource{
			SupplierName: s.Supplier,
			SupplierURL:  s.URL,
			VarietyName:  s.Variety,
			PriceRange:   s.PriceRange,
			Notes:        s.Notes,
			IsAffiliate:  s.Affiliate,
		})
	}
	return c
}

// FromEntity is the inverse of Entity, used when exporting the catalog.
func FromEntity(c entities.Crop) CropRecord {
	r := CropRecord{
		Name:              c.Name,
		Category:          c.Category,
		ScientificName:    c.ScientificName,
		Description:       c.Description,
		DifficultyLevel:   c.DifficultyLevel,
		DaysToHarvest:     c.DaysToHarvest,
		HarvestFrequency:  c.HarvestFrequency,
		HarvestsPerYear:   c.HarvestsPerYear,
		YieldPerSqFtLbs:   c.YieldPerSqFtLbs,
		SpaceRequirements: c.SpaceRequirements,
		ClimateZones:      c.ClimateZones,
		GrowingMethods:    c.GrowingMethods,
		ImageURL:          c.ImageURL,
	}
	for _, p := range c.Pricing {
		r.Pricing = append(r.Pricing, PriceRecord{Channel: p.SalesChannel, Low: p.PriceLow, High: p.PriceHigh, Unit: p.PriceUnit, Region: p.Region, Notes: p.Notes})
	}
	for _, w := range c.PlantingWindows {
		r.PlantingWindows = append(r.PlantingWindows, WindowRecord{
			Region:      w.Region,
			ClimateZone: w.ClimateZone,
			Plant:       [2]int{w.PlantingStartMonth, w.PlantingEndMonth},
			Harvest:     [2]int{w.HarvestStartMonth, w.HarvestEndMonth},
			Notes:       w.Notes,
		})
	}
	for _, s := range c.SeedSources {
		r.SeedSources = append(r.SeedSources, SourceRecord{Supplier: s.SupplierName, URL: s.SupplierURL, Variety: s.VarietyName, PriceRange: s.PriceRange, Notes: s.Notes, Affiliate: s.IsAffiliate})
	}
	return r
}

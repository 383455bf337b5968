package entities

import "time"

type Crop struct {
	CropID            uint     `gorm:"primaryKey" json:"crop_id"`
	Name              string   `gorm:"uniqueIndex" json:"name"`
	Category          string   `gorm:"index" json:"category"` // microgreens|herbs|vegetables|fruits|specialty
	ScientificName    string   `json:"scientific_name,omitempty"`
	Description       string   `json:"description,omitempty"`
	DifficultyLevel   string   `json:"difficulty_level"`  // easy|medium|hard
	DaysToHarvest     int      `json:"days_to_harvest"`
	HarvestFrequency  string   `json:"harvest_frequency"` // one_time|weekly|biweekly|monthly|seasonal
	HarvestsPerYear   float64  `json:"harvests_per_year"`
	YieldPerSqFtLbs   float64  `json:"yield_per_sqft_lbs"`
	SpaceRequirements string   `json:"space_requirements,omitempty"`
	ClimateZones      []string `gorm:"serializer:json" json:"climate_zones,omitempty"`
	GrowingMethods    []string `gorm:"serializer:json" json:"growing_methods,omitempty"`
	ImageURL          string   `json:"image_url,omitempty"`

	Pricing         []CropPricing    `gorm:"foreignKey:CropID" json:"pricing,omitempty"`
	PlantingWindows []PlantingWindow `gorm:"foreignKey:CropID" json:"planting_windows,omitempty"`
	SeedSources     []SeedSource     `gorm:"foreignKey:CropID" json:"seed_sources,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CropPricing is one price quote for a crop in a sales channel. An empty
// Region applies to every region.
type CropPricing struct {
	PricingID    uint      `gorm:"primaryKey" json:"pricing_id"`
	CropID       uint      `gorm:"uniqueIndex:idx_pricing_key,priority:1" json:"crop_id"`
	SalesChannel string    `gorm:"uniqueIndex:idx_pricing_key,priority:2" json:"sales_channel"` // farmers_market|wholesale|retail|csa
	PriceLow     float64   `json:"price_low"`
	PriceHigh    float64   `json:"price_high"`
	PriceUnit    string    `json:"price_unit"` // per_lb|per_oz|per_bunch|per_unit
	Region       string    `gorm:"uniqueIndex:idx_pricing_key,priority:3" json:"region,omitempty"`
	DataSource   string    `json:"data_source,omitempty"` // manual|import
	Notes        string    `json:"notes,omitempty"`
	LastUpdated  time.Time `json:"last_updated"`
	CreatedAt    time.Time `json:"created_at"`
}

// PlantingWindow months are 1..12. A start month greater than the end month
// wraps the year boundary (Oct..Feb).
type PlantingWindow struct {
	WindowID           uint   `gorm:"primaryKey" json:"window_id"`
	CropID             uint   `gorm:"index" json:"crop_id"`
	Region             string `json:"region,omitempty"`
	ClimateZone        string `json:"climate_zone,omitempty"`
	PlantingStartMonth int    `json:"planting_start_month"`
	PlantingEndMonth   int    `json:"planting_end_month"`
	HarvestStartMonth  int    `json:"harvest_start_month"`
	HarvestEndMonth    int    `json:"harvest_end_month"`
	Notes              string `json:"notes,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

type SeedSource struct {
	SourceID     uint   `gorm:"primaryKey" json:"source_id"`
	CropID       uint   `gorm:"index" json:"crop_id"`
	SupplierName string `json:"supplier_name"`
	SupplierURL  string `json:"supplier_url,omitempty"`
	VarietyName  string `json:"variety_name,omitempty"`
	PriceRange   string `json:"price_range,omitempty"`
	Notes        string `json:"notes,omitempty"`
	IsAffiliate  bool   `json:"is_affiliate"`
	CreatedAt    time.Time `json:"created_at"`
}

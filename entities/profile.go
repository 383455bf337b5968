package entities

import "time"

type UserProfile struct {
	ProfileID        uint     `gorm:"primaryKey" json:"profile_id"`
	UserID           string   `gorm:"uniqueIndex" json:"user_id"`
	LocationZip      string   `json:"location_zip,omitempty"`
	LocationState    string   `json:"location_state,omitempty"`
	ClimateZone      string   `json:"climate_zone,omitempty"`
	GrowingSpaceSqFt *float64 `gorm:"column:growing_space_sqft" json:"growing_space_sqft"`
	GrowingMethods   []string `gorm:"serializer:json" json:"growing_methods"` // outdoor|greenhouse|hydroponic|indoor
	SalesChannels    []string `gorm:"serializer:json" json:"sales_channels"`  // ordered by preference
	ExperienceLevel  string   `json:"experience_level,omitempty"`             // beginner|intermediate|advanced

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SqFt returns the growing space, 0 when unknown.
func (p *UserProfile) SqFt() float64 {
	if p == nil || p.GrowingSpaceSqFt == nil {
		return 0
	}
	return *p.GrowingSpaceSqFt
}

// Complete reports whether the profile has enough data for personalised
// numbers: a growing area and at least one sales channel.
func (p *UserProfile) Complete() bool {
	return p != nil && p.SqFt() > 0 && len(p.SalesChannels) > 0
}

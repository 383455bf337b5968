package buyer

import "time"

// Types are the accepted Buyer.BuyerType values.
var Types = []string{"restaurant", "grocery", "distributor", "csa", "other"}

type Buyer struct {
	BuyerID         uint     `gorm:"primaryKey" json:"buyer_id"`
	BusinessName    string   `json:"business_name"`
	BuyerType       string   `gorm:"index" json:"buyer_type"` // restaurant|grocery|distributor|csa|other
	LocationCity    string   `json:"location_city,omitempty"`
	LocationState   string   `gorm:"index" json:"location_state,omitempty"`
	LocationZip     string   `json:"location_zip,omitempty"`
	ContactEmail    string   `json:"contact_email,omitempty"`
	ContactPhone    string   `json:"contact_phone,omitempty"`
	WebsiteURL      string   `json:"website_url,omitempty"`
	Description     string   `json:"description,omitempty"`
	CropsInterested []string `gorm:"serializer:json" json:"crops_interested,omitempty"`
	CreatedBy       string   `json:"created_by,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

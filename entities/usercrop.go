package entities

import "time"

type UserCrop struct {
	UserCropID          uint       `gorm:"primaryKey" json:"user_crop_id"`
	UserID              string     `gorm:"index" json:"user_id"`
	CropID              uint       `gorm:"index" json:"crop_id"`
	SqFtAllocated       *float64   `json:"sqft_allocated"`
	PlantingDate        *time.Time `json:"planting_date"`
	ExpectedHarvestDate *time.Time `json:"expected_harvest_date"`
	Status              string     `gorm:"index" json:"status"` // planned|planted|harvested|removed
	Notes               string     `json:"notes,omitempty"`

	Crop *Crop `gorm:"foreignKey:CropID;references:CropID" json:"crop,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

package service

import (
	"greengreen/entities"
	"greengreen/pkg/crop"
)

type CropService interface {
	List(category string) ([]entities.Crop, error)
	Detail(id uint) (*crop.Detail, error)
	// Calculate prices the crop for the given channel (representative
	// pricing when empty) in region.
	Calculate(id uint, sqft float64, channel, region string) (*crop.Calculation, error)
}

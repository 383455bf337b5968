package repository

import "greengreen/entities"

type PricingRepository interface {
	// Upsert inserts p or replaces the quote with the same crop, channel and
	// region.
	Upsert(p *entities.CropPricing) error
}

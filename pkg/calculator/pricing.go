// Package calculator turns the crop catalog and a grower's profile into
// revenue estimates. Everything here is pure: no I/O, no errors, and the
// inputs are never mutated.
package calculator

import "greengreen/entities"

const (
	DefaultRegion  = "southwest"
	DefaultChannel = "farmers_market"
)

// SelectPricing picks the price quote that applies to a grower selling
// through channels (in preference order) in region. Without channels the
// farmers' market quote wins. Region-matching quotes are searched across all
// channels before channel-only matches; the first quote is the last resort.
// It returns nil only when pricing is empty.
func SelectPricing(pricing []entities.CropPricing, channels []string, region string) *entities.CropPricing {
	if region == "" {
		region = DefaultRegion
	}
	if len(pricing) == 0 {
		return nil
	}

	if len(channels) == 0 {
		if p := find(pricing, func(p entities.CropPricing) bool { return p.SalesChannel == DefaultChannel }); p != nil {
			return p
		}
		return first(pricing)
	}

	for _, ch := range channels {
		if p := find(pricing, func(p entities.CropPricing) bool {
			return p.SalesChannel == ch && (p.Region == region || p.Region == "")
		}); p != nil {
			return p
		}
	}
	for _, ch := range channels {
		if p := find(pricing, func(p entities.CropPricing) bool { return p.SalesChannel == ch }); p != nil {
			return p
		}
	}
	return first(pricing)
}

func find(pricing []entities.CropPricing, match func(entities.CropPricing) bool) *entities.CropPricing {
	for i := range pricing {
		if match(pricing[i]) {
			p := pricing[i]
			return &p
		}
	}
	return nil
}

func first(pricing []entities.CropPricing) *entities.CropPricing {
	p := pricing[0]
	return &p
}

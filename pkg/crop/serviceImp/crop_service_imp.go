package serviceImp

import (
	"fmt"
	"slices"

	"greengreen/entities"
	"greengreen/pkg/apperr"
	"greengreen/pkg/calculator"
	"greengreen/pkg/crop"
	repo "greengreen/pkg/crop/repository"
	"greengreen/pkg/crop/service"
)

type cropSvc struct{ r repo.CropRepository }

func NewCropService(r repo.CropRepository) service.CropService { return &cropSvc{r} }

func (s *cropSvc) List(category string) ([]entities.Crop, error) {
	if category != "" && !slices.Contains(entities.CropCategories, category) {
		return nil, fmt.Errorf("category must be one of %v: %w", entities.CropCategories, apperr.ErrInvalidInput)
	}
	return s.r.List(category)
}

func (s *cropSvc) Detail(id uint) (*crop.Detail, error) {
	c, err := s.r.Get(id)
	if err != nil {
		return nil, err
	}
	return crop.NewDetail(*c), nil
}

func (s *cropSvc) Calculate(id uint, sqft float64, channel, region string) (*crop.Calculation, error) {
	if sqft < 0 {
		return nil, fmt.Errorf("sqft must be >= 0: %w", apperr.ErrInvalidInput)
	}
	if channel != "" && !slices.Contains(entities.SalesChannels, channel) {
		return nil, fmt.Errorf("channel must be one of %v: %w", entities.SalesChannels, apperr.ErrInvalidInput)
	}
	c, err := s.r.Get(id)
	if err != nil {
		return nil, err
	}

	price := crop.RepresentativePricing(*c)
	if channel != "" {
		if p := calculator.SelectPricing(c.Pricing, []string{channel}, region); p != nil {
			price = calculator.PriceRange{Low: p.PriceLow, High: p.PriceHigh, Unit: p.PriceUnit}
		}
	}
	out := crop.Calculate(*c, price, sqft)
	out.Channel = channel
	return out, nil
}

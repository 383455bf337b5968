package serviceImp

import (
	"fmt"
	"slices"
	"strings"

	"greengreen/entities"
	"greengreen/pkg/apperr"
	repo "greengreen/pkg/profile/repository"
	"greengreen/pkg/profile/service"
)

type profileSvc struct{ r repo.ProfileRepository }

func NewProfileService(r repo.ProfileRepository) service.ProfileService { return &profileSvc{r} }

func (s *profileSvc) GetProfile(uid string) (*entities.UserProfile, error) {
	return s.r.FindByUser(uid)
}

func (s *profileSvc) SaveProfile(uid string, p *entities.UserProfile) (*entities.UserProfile, error) {
	if err := Validate(p); err != nil {
		return nil, err
	}
	p.UserID = uid
	p.ProfileID = 0
	p.LocationState = strings.ToUpper(strings.TrimSpace(p.LocationState))
	p.GrowingMethods = nilIfEmpty(p.GrowingMethods)
	p.SalesChannels = nilIfEmpty(p.SalesChannels)
	if err := s.r.Upsert(p); err != nil {
		return nil, err
	}
	return s.r.FindByUser(uid)
}

// Validate checks tag values and the growing area.
func Validate(p *entities.UserProfile) error {
	if p.GrowingSpaceSqFt != nil && *p.GrowingSpaceSqFt < 0 {
		return fmt.Errorf("growing_space_sqft must be >= 0: %w", apperr.ErrInvalidInput)
	}
	if !entities.AllIn(p.GrowingMethods, entities.GrowingMethods) {
		return fmt.Errorf("growing_methods must be within %v: %w", entities.GrowingMethods, apperr.ErrInvalidInput)
	}
	if !entities.AllIn(p.SalesChannels, entities.SalesChannels) {
		return fmt.Errorf("sales_channels must be within %v: %w", entities.SalesChannels, apperr.ErrInvalidInput)
	}
	if p.ExperienceLevel != "" && !slices.Contains(entities.ExperienceLevels, p.ExperienceLevel) {
		return fmt.Errorf("experience_level must be one of %v: %w", entities.ExperienceLevels, apperr.ErrInvalidInput)
	}
	return nil
}

func nilIfEmpty(v []string) []string {
	if len(v) == 0 {
		return nil
	}
	return v
}

package serviceImp

import (
	"fmt"
	"slices"
	"strings"

	"greengreen/pkg/apperr"
	"greengreen/pkg/buyer"
	"greengreen/pkg/buyer/repository"
	svc "greengreen/pkg/buyer/service"
)

type service struct{ repo repository.Repo }

func New(r repository.Repo) svc.Service { return &service{repo: r} }

func (s *service) Create(uid string, b *buyer.Buyer) error {
	b.BusinessName = strings.TrimSpace(b.BusinessName)
	if b.BusinessName == "" {
		return fmt.Errorf("business_name is required: %w", apperr.ErrInvalidInput)
	}
	if b.BuyerType == "" {
		b.BuyerType = "other"
	}
	if !slices.Contains(buyer.Types, b.BuyerType) {
		return fmt.Errorf("buyer_type must be one of %v: %w", buyer.Types, apperr.ErrInvalidInput)
	}
	b.BuyerID = 0
	b.LocationState = strings.ToUpper(strings.TrimSpace(b.LocationState))
	b.CreatedBy = uid
	return s.repo.Create(b)
}

func (s *service) List(state, crop string) ([]buyer.Buyer, error) {
	return s.repo.List(strings.TrimSpace(state), strings.TrimSpace(crop))
}

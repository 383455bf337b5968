package repositoryImp

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"greengreen/entities"
	"greengreen/pkg/pricing/repository"
)

type pricingRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.PricingRepository { return &pricingRepo{db} }

func (r *pricingRepo) Upsert(p *entities.CropPricing) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "crop_id"}, {Name: "sales_channel"}, {Name: "region"}},
		DoUpdates: clause.AssignmentColumns([]string{"price_low", "price_high", "price_unit", "data_source", "notes", "last_updated"}),
	}).Create(p).Error
	if err != nil {
		return fmt.Errorf("upsert pricing: %w", err)
	}
	return nil
}

package repositoryImp

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"greengreen/pkg/buyer"
	"greengreen/pkg/buyer/repository"
)

type sqliteRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.Repo { return &sqliteRepo{db: db} }

func (r *sqliteRepo) Create(b *buyer.Buyer) error {
	if err := r.db.Create(b).Error; err != nil {
		return fmt.Errorf("create buyer: %w", err)
	}
	return nil
}

func (r *sqliteRepo) List(state, crop string) ([]buyer.Buyer, error) {
	q := r.db.Model(&buyer.Buyer{})
	if state != "" {
		q = q.Where("location_state = ?", strings.ToUpper(state))
	}
	if crop != "" {
		// crops_interested is a JSON array
		q = q.Where("EXISTS (SELECT 1 FROM json_each(buyers.crops_interested) WHERE LOWER(json_each.value) = LOWER(?))", crop)
	}
	var list []buyer.Buyer
	if err := q.Order("business_name asc, buyer_id asc").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list buyers: %w", err)
	}
	return list, nil
}

package repositoryImp

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"greengreen/entities"
	"greengreen/pkg/apperr"
	"greengreen/pkg/crop/repository"
)

type cropRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.CropRepository { return &cropRepo{db} }

func (r *cropRepo) List(category string) ([]entities.Crop, error) {
	q := r.db.Model(&entities.Crop{}).
		Preload("Pricing", func(db *gorm.DB) *gorm.DB { return db.Order("pricing_id") }).
		Preload("PlantingWindows", func(db *gorm.DB) *gorm.DB { return db.Order("window_id") })
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var out []entities.Crop
	if err := q.Order("name asc").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list crops: %w", err)
	}
	return out, nil
}

func (r *cropRepo) Get(id uint) (*entities.Crop, error) {
	var c entities.Crop
	err := r.db.
		Preload("Pricing", func(db *gorm.DB) *gorm.DB { return db.Order("pricing_id") }).
		Preload("PlantingWindows", func(db *gorm.DB) *gorm.DB { return db.Order("window_id") }).
		Preload("SeedSources", func(db *gorm.DB) *gorm.DB { return db.Order("source_id") }).
		First(&c, id).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &c, nil
}

func (r *cropRepo) FindByName(name string) (*entities.Crop, error) {
	var c entities.Crop
	if err := r.db.Where("LOWER(name) = LOWER(?)", name).First(&c).Error; err != nil {
		return nil, notFound(err)
	}
	return &c, nil
}

func (r *cropRepo) Create(c *entities.Crop) error {
	if err := r.db.Create(c).Error; err != nil {
		return fmt.Errorf("create crop %s: %w", c.Name, err)
	}
	return nil
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.ErrNotFound
	}
	return fmt.Errorf("find crop: %w", err)
}

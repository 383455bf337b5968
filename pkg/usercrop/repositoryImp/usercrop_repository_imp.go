package repositoryImp

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"greengreen/entities"
	"greengreen/pkg/apperr"
	"greengreen/pkg/usercrop/repository"
)

type userCropRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.UserCropRepository { return &userCropRepo{db} }

func (r *userCropRepo) Create(uc *entities.UserCrop) error {
	if err := r.db.Omit("Crop").Create(uc).Error; err != nil {
		return fmt.Errorf("create user crop: %w", err)
	}
	return nil
}

func (r *userCropRepo) List(uid string) ([]entities.UserCrop, error) {
	var out []entities.UserCrop
	err := r.db.Preload("Crop").
		Where("user_id = ?", uid).
		Order("planting_date IS NULL, planting_date ASC, user_crop_id ASC").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("list user crops: %w", err)
	}
	return out, nil
}

func (r *userCropRepo) FindByID(id uint, uid string) (*entities.UserCrop, error) {
	var uc entities.UserCrop
	if err := r.db.Preload("Crop").Where("user_crop_id = ? AND user_id = ?", id, uid).First(&uc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("find user crop: %w", err)
	}
	return &uc, nil
}

func (r *userCropRepo) PatchStatus(id uint, uid, status string) error {
	res := r.db.Model(&entities.UserCrop{}).Where("user_crop_id = ? AND user_id = ?", id, uid).Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("patch user crop: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

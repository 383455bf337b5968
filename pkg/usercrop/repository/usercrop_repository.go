package repository

import "greengreen/entities"

type UserCropRepository interface {
	Create(uc *entities.UserCrop) error
	// List returns the user's crops ordered by planting date, unplanted last.
	List(uid string) ([]entities.UserCrop, error)
	FindByID(id uint, uid string) (*entities.UserCrop, error)
	PatchStatus(id uint, uid, status string) error
}

package service

import (
	"time"

	"greengreen/entities"
)

type NewUserCrop struct {
	CropID        uint
	SqFtAllocated *float64
	PlantingDate  *time.Time
	Notes         string
}

type UserCropService interface {
	Add(uid string, in NewUserCrop) (*entities.UserCrop, error)
	List(uid string) ([]entities.UserCrop, error)
	SetStatus(id uint, uid, status string) (*entities.UserCrop, error)
}

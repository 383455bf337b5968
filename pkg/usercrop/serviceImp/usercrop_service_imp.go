package serviceImp

import (
	"fmt"
	"slices"

	"greengreen/entities"
	"greengreen/pkg/apperr"
	croprepo "greengreen/pkg/crop/repository"
	"greengreen/pkg/planting"
	repo "greengreen/pkg/usercrop/repository"
	"greengreen/pkg/usercrop/service"
)

type userCropSvc struct {
	r     repo.UserCropRepository
	crops croprepo.CropRepository
}

func NewUserCropService(r repo.UserCropRepository, crops croprepo.CropRepository) service.UserCropService {
	return &userCropSvc{r: r, crops: crops}
}

func (s *userCropSvc) Add(uid string, in service.NewUserCrop) (*entities.UserCrop, error) {
	if in.SqFtAllocated != nil && *in.SqFtAllocated < 0 {
		return nil, fmt.Errorf("sqft_allocated must be >= 0: %w", apperr.ErrInvalidInput)
	}
	crop, err := s.crops.Get(in.CropID)
	if err != nil {
		return nil, fmt.Errorf("crop %d: %w", in.CropID, err)
	}

	uc := &entities.UserCrop{
		UserID:        uid,
		CropID:        crop.CropID,
		SqFtAllocated: in.SqFtAllocated,
		Status:        "planned",
		Notes:         in.Notes,
	}
	if in.PlantingDate != nil {
		pd := *in.PlantingDate
		harvest := planting.ExpectedHarvestDate(pd, crop.DaysToHarvest)
		uc.PlantingDate = &pd
		uc.ExpectedHarvestDate = &harvest
		uc.Status = "planted"
	}
	if err := s.r.Create(uc); err != nil {
		return nil, err
	}
	uc.Crop = crop
	return uc, nil
}

func (s *userCropSvc) List(uid string) ([]entities.UserCrop, error) {
	return s.r.List(uid)
}

func (s *userCropSvc) SetStatus(id uint, uid, status string) (*entities.UserCrop, error) {
	if !slices.Contains(entities.UserCropStatuses, status) {
		return nil, fmt.Errorf("status must be one of %v: %w", entities.UserCropStatuses, apperr.ErrInvalidInput)
	}
	if err := s.r.PatchStatus(id, uid, status); err != nil {
		return nil, err
	}
	return s.r.FindByID(id, uid)
}

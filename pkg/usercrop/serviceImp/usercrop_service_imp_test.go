package serviceImp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greengreen/pkg/apperr"
	croprepo "greengreen/pkg/crop/repositoryImp"
	"greengreen/pkg/testutil"
	"greengreen/pkg/usercrop/repositoryImp"
	"greengreen/pkg/usercrop/service"
)

func TestAddAndList(t *testing.T) {
	db := testutil.NewDB(t)
	crops := testutil.SeedCrops(t, db, testutil.Crop("Pea Shoots"))
	s := NewUserCropService(repositoryImp.New(db), croprepo.New(db))

	area := 12.0
	planned, err := s.Add("u1", service.NewUserCrop{CropID: crops[0].CropID, SqFtAllocated: &area})
	require.NoError(t, err)
	assert.Equal(t, "planned", planned.Status)
	assert.Nil(t, planned.ExpectedHarvestDate)

	pd := time.Date(2026, time.March, 25, 0, 0, 0, 0, time.UTC)
	planted, err := s.Add("u1", service.NewUserCrop{CropID: crops[0].CropID, PlantingDate: &pd, Notes: "tray 2"})
	require.NoError(t, err)
	assert.Equal(t, "planted", planted.Status)
	require.NotNil(t, planted.ExpectedHarvestDate)
	assert.True(t, planted.ExpectedHarvestDate.Equal(time.Date(2026, time.April, 4, 0, 0, 0, 0, time.UTC)))

	_, err = s.Add("u2", service.NewUserCrop{CropID: crops[0].CropID})
	require.NoError(t, err)

	list, err := s.List("u1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, planted.UserCropID, list[0].UserCropID)
	require.NotNil(t, list[0].Crop)
	assert.Equal(t, "Pea Shoots", list[0].Crop.Name)

	_, err = s.Add("u1", service.NewUserCrop{CropID: 999})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	neg := -1.0
	_, err = s.Add("u1", service.NewUserCrop{CropID: crops[0].CropID, SqFtAllocated: &neg})
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
}

func TestSetStatusIsOwnerScoped(t *testing.T) {
	db := testutil.NewDB(t)
	crops := testutil.SeedCrops(t, db, testutil.Crop("Pea Shoots"))
	s := NewUserCropService(repositoryImp.New(db), croprepo.New(db))

	uc, err := s.Add("u1", service.NewUserCrop{CropID: crops[0].CropID})
	require.NoError(t, err)

	got, err := s.SetStatus(uc.UserCropID, "u1", "harvested")
	require.NoError(t, err)
	assert.Equal(t, "harvested", got.Status)

	_, err = s.SetStatus(uc.UserCropID, "intruder", "removed")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = s.SetStatus(uc.UserCropID, "u1", "eaten")
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
}

func TestListLoadsTheTrackedCrop(t *testing.T) {
	db := testutil.NewDB(t)
	crops := testutil.SeedCrops(t, db, testutil.Crop("Basil"), testutil.Crop("Kale"))
	s := NewUserCropService(repositoryImp.New(db), croprepo.New(db))

	uc, err := s.Add("u1", service.NewUserCrop{CropID: crops[1].CropID})
	require.NoError(t, err)
	require.NotEqual(t, uc.UserCropID, uc.CropID)

	list, err := s.List("u1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].Crop)
	assert.Equal(t, "Kale", list[0].Crop.Name)

	got, err := s.SetStatus(uc.UserCropID, "u1", "planted")
	require.NoError(t, err)
	require.NotNil(t, got.Crop)
	assert.Equal(t, "Kale", got.Crop.Name)
}

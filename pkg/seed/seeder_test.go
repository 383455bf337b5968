package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"greengreen/entities"
	"greengreen/pkg/testutil"
)

func TestSeedIsIdempotent(t *testing.T) {
	db := testutil.NewDB(t)
	c, err := Default()
	require.NoError(t, err)
	s := NewSeeder(db, zap.NewNop())

	res, err := s.Seed(c)
	require.NoError(t, err)
	assert.Equal(t, Result{Inserted: 8}, res)

	var pricing int64
	require.NoError(t, db.Model(&entities.CropPricing{}).Count(&pricing).Error)
	assert.EqualValues(t, 32, pricing)

	res, err = s.Seed(c)
	require.NoError(t, err)
	assert.Equal(t, Result{Skipped: 8}, res)
}

func TestSeedRollsBackFailedCrop(t *testing.T) {
	db := testutil.NewDB(t)
	dup := PriceRecord{Channel: "csa", Low: 1, High: 2, Unit: "per_lb", Region: "west"}
	c := &Catalog{Crops: []CropRecord{
		{Name: "Kale", Category: "vegetables", DifficultyLevel: "easy", DaysToHarvest: 55, Pricing: []PriceRecord{dup, dup}},
		{Name: "Chard", Category: "vegetables", DifficultyLevel: "easy", DaysToHarvest: 50},
	}}

	res, err := NewSeeder(db, zap.NewNop()).Seed(c)
	require.Error(t, err)
	assert.Equal(t, Result{Inserted: 1, Failed: 1}, res)

	var names []string
	require.NoError(t, db.Model(&entities.Crop{}).Pluck("name", &names).Error)
	assert.Equal(t, []string{"Chard"}, names)
}

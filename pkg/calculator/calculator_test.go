package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greengreen/entities"
)

func price(channel, region string, low, high float64) entities.CropPricing {
	return entities.CropPricing{SalesChannel: channel, Region: region, PriceLow: low, PriceHigh: high, PriceUnit: "per_lb"}
}

func sqft(v float64) *float64 { return &v }

func TestSelectPricing(t *testing.T) {
	fm := price("farmers_market", "southwest", 25, 40)
	ws := price("wholesale", "southwest", 18, 25)
	wsAny := price("wholesale", "", 17, 24)
	retailNE := price("retail", "northeast", 4, 6)
	csaNE := price("csa", "northeast", 30, 35)

	tests := []struct {
		name     string
		pricing  []entities.CropPricing
		channels []string
		region   string
		want     *entities.CropPricing
	}{
		{"empty pricing", nil, []string{"retail"}, "", nil},
		{"no channels picks farmers market", []entities.CropPricing{ws, fm}, nil, "", &fm},
		{"no channels without farmers market picks first", []entities.CropPricing{ws, retailNE}, nil, "", &ws},
		{"first channel with region match", []entities.CropPricing{fm, ws}, []string{"wholesale", "farmers_market"}, "", &ws},
		{"region agnostic entry counts as match", []entities.CropPricing{wsAny}, []string{"wholesale"}, "southwest", &wsAny},
		{"region match beats earlier channel without region", []entities.CropPricing{retailNE, fm}, []string{"retail", "farmers_market"}, "southwest", &fm},
		{"channel-only match when no region fits", []entities.CropPricing{fm, retailNE, csaNE}, []string{"csa", "retail"}, "southwest", &csaNE},
		{"falls back to first entry", []entities.CropPricing{retailNE, fm}, []string{"wholesale"}, "southwest", &retailNE},
		{"explicit region", []entities.CropPricing{fm, retailNE}, []string{"retail", "farmers_market"}, "northeast", &retailNE},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectPricing(tt.pricing, tt.channels, tt.region)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestSelectPricingDoesNotAlias(t *testing.T) {
	pricing := []entities.CropPricing{price("farmers_market", "", 1, 2)}
	got := SelectPricing(pricing, nil, "")
	require.NotNil(t, got)
	got.PriceLow = 99
	assert.Equal(t, 1.0, pricing[0].PriceLow)
}

func TestRevenue(t *testing.T) {
	avg := AveragePrice(price("farmers_market", "", 25, 40))
	assert.Equal(t, 32.5, avg)
	assert.InDelta(t, 4225, RevenuePerSqFt(2.5, avg, 52), 1e-9)
	assert.InDelta(t, 422500, AnnualRevenue(100, 2.5, avg, 52), 1e-9)
	assert.InDelta(t, 13000, AnnualYield(100, 2.5, 52), 1e-9)
}

func TestFilterByGrowingMethods(t *testing.T) {
	indoor := entities.Crop{Name: "oyster", GrowingMethods: []string{"indoor"}}
	open := entities.Crop{Name: "any"}
	mixed := entities.Crop{Name: "basil", GrowingMethods: []string{"outdoor", "greenhouse"}}
	crops := []entities.Crop{indoor, open, mixed}

	assert.Equal(t, crops, FilterByGrowingMethods(crops, nil))
	assert.Equal(t, crops, FilterByGrowingMethods(crops, []string{}))

	got := FilterByGrowingMethods(crops, []string{"outdoor"})
	assert.Equal(t, []entities.Crop{open, mixed}, got)

	got = FilterByGrowingMethods(crops, []string{"hydroponic"})
	assert.Equal(t, []entities.Crop{open}, got)
	assert.LessOrEqual(t, len(got), len(crops))
}

func TestProfitability(t *testing.T) {
	crop := entities.Crop{
		Name:            "Sunflower Microgreens",
		YieldPerSqFtLbs: 2.5,
		HarvestsPerYear: 52,
		Pricing:         []entities.CropPricing{price("farmers_market", "southwest", 25, 40)},
	}

	t.Run("with area", func(t *testing.T) {
		cc := Profitability(crop, &entities.UserProfile{GrowingSpaceSqFt: sqft(100), SalesChannels: []string{"farmers_market"}}, "")
		require.NotNil(t, cc)
		assert.InDelta(t, 4225, cc.RevenuePerSqFt, 1e-9)
		assert.InDelta(t, 422500, cc.AnnualRevenue, 1e-9)
		assert.Equal(t, PriceRange{Low: 25, High: 40, Unit: "per_lb"}, cc.PriceRange)
		assert.Equal(t, "Sunflower Microgreens", cc.Name)
	})

	t.Run("unknown area gives zero annual revenue", func(t *testing.T) {
		cc := Profitability(crop, &entities.UserProfile{}, "")
		require.NotNil(t, cc)
		assert.Zero(t, cc.AnnualRevenue)
		assert.InDelta(t, 4225, cc.RevenuePerSqFt, 1e-9)
	})

	t.Run("negative area gives zero annual revenue", func(t *testing.T) {
		cc := Profitability(crop, &entities.UserProfile{GrowingSpaceSqFt: sqft(-10)}, "")
		require.NotNil(t, cc)
		assert.Zero(t, cc.AnnualRevenue)
	})

	t.Run("no pricing", func(t *testing.T) {
		assert.Nil(t, Profitability(entities.Crop{Name: "x"}, nil, ""))
	})
}

func TestRank(t *testing.T) {
	mk := func(name string, yield float64, methods ...string) entities.Crop {
		return entities.Crop{
			Name:            name,
			YieldPerSqFtLbs: yield,
			HarvestsPerYear: 1,
			GrowingMethods:  methods,
			Pricing:         []entities.CropPricing{price("wholesale", "", 10, 10)},
		}
	}
	crops := []entities.Crop{
		mk("low", 1),
		mk("high", 5, "outdoor"),
		mk("indoor-only", 9, "indoor"),
		mk("tie-a", 3),
		mk("tie-b", 3),
		{Name: "unpriced", YieldPerSqFtLbs: 100, HarvestsPerYear: 1},
	}
	profile := &entities.UserProfile{
		GrowingSpaceSqFt: sqft(10),
		GrowingMethods:   []string{"outdoor"},
		SalesChannels:    []string{"wholesale"},
	}

	got := Rank(crops, profile, "")
	names := make([]string, len(got))
	for i, c := range got {
		names[i] = c.Name
	}
	assert.Equal(t, []string{"high", "tie-a", "tie-b", "low"}, names)

	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].RevenuePerSqFt, got[i].RevenuePerSqFt)
	}
	for _, c := range got {
		assert.Greater(t, c.RevenuePerSqFt, 0.0)
	}
}

func TestRankEmpty(t *testing.T) {
	assert.Empty(t, Rank(nil, nil, ""))
}

func TestSortByProfitabilityAscending(t *testing.T) {
	in := []CalculatedCrop{{RevenuePerSqFt: 3}, {RevenuePerSqFt: 1}, {RevenuePerSqFt: 2}}
	got := SortByProfitability(in, false)
	assert.Equal(t, []float64{1, 2, 3}, []float64{got[0].RevenuePerSqFt, got[1].RevenuePerSqFt, got[2].RevenuePerSqFt})
	assert.Equal(t, 3.0, in[0].RevenuePerSqFt, "input must not be reordered")
}

package controllerImp

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greengreen/pkg/crop"
	"greengreen/pkg/crop/repositoryImp"
	"greengreen/pkg/crop/serviceImp"
	"greengreen/pkg/testutil"
)

func TestCropEndpoints(t *testing.T) {
	db := testutil.NewDB(t)
	crops := testutil.SeedCrops(t, db, testutil.Crop("Sunflower Microgreens"))
	h := New(serviceImp.NewCropService(repositoryImp.New(db)), "southwest")

	e := echo.New()
	e.GET("/crops", h.List)
	e.GET("/crops/:id", h.Get)
	e.GET("/crops/:id/calculate", h.Calculate)
	get := func(path string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		return rec
	}

	rec := get("/crops")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Sunflower Microgreens")
	assert.Equal(t, http.StatusBadRequest, get("/crops?category=trees").Code)

	id := crops[0].CropID
	rec = get(fmt.Sprintf("/crops/%d", id))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"insights"`)
	assert.Equal(t, http.StatusNotFound, get("/crops/424242").Code)
	assert.Equal(t, http.StatusBadRequest, get("/crops/abc").Code)

	rec = get(fmt.Sprintf("/crops/%d/calculate", id))
	require.Equal(t, http.StatusOK, rec.Code)
	var calc crop.Calculation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &calc))
	assert.Equal(t, 100.0, calc.SqFt)
	assert.InDelta(t, 42250, calc.AnnualRevenue, 1e-6)
	assert.Equal(t, "$42,250", calc.Display.AnnualRevenue)

	rec = get(fmt.Sprintf("/crops/%d/calculate?sqft=10&channel=farmers_market", id))
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &calc))
	assert.InDelta(t, 4225, calc.AnnualRevenue, 1e-6)

	assert.Equal(t, http.StatusBadRequest, get(fmt.Sprintf("/crops/%d/calculate?sqft=lots", id)).Code)
}

func TestCropDetailUsesSnakeCaseTimestamps(t *testing.T) {
	db := testutil.NewDB(t)
	crops := testutil.SeedCrops(t, db, testutil.Crop("Pea Shoots"))
	h := New(serviceImp.NewCropService(repositoryImp.New(db)), "southwest")

	e := echo.New()
	e.GET("/crops/:id", h.Get)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, fmt.Sprintf("/crops/%d", crops[0].CropID), nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		PlantingWindows []map[string]any `json:"planting_windows"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body.PlantingWindows)
	assert.Contains(t, body.PlantingWindows[0], "created_at")
	assert.NotContains(t, body.PlantingWindows[0], "CreatedAt")
}

package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"greengreen/entities"
	"greengreen/pkg/apperr"
	"greengreen/pkg/profile/controller"
	"greengreen/pkg/profile/service"
)

type ProfileCtrl struct{ s service.ProfileService }

func New(s service.ProfileService) controller.ProfileController { return &ProfileCtrl{s} }

type profileReq struct {
	LocationZip      string   `json:"location_zip"`
	LocationState    string   `json:"location_state"`
	ClimateZone      string   `json:"climate_zone"`
	GrowingSpaceSqFt *float64 `json:"growing_space_sqft"`
	GrowingMethods   []string `json:"growing_methods"`
	SalesChannels    []string `json:"sales_channels"`
	ExperienceLevel  string   `json:"experience_level"`
}

func (h *ProfileCtrl) Get(c echo.Context) error {
	uid := c.Get("uid").(string)
	p, err := h.s.GetProfile(uid)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProfileCtrl) Put(c echo.Context) error {
	uid := c.Get("uid").(string)
	var req profileReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	p := &entities.UserProfile{
		LocationZip: req.LocationZip, LocationState: req.LocationState, ClimateZone: req.ClimateZone,
		GrowingSpaceSqFt: req.GrowingSpaceSqFt, GrowingMethods: req.GrowingMethods,
		SalesChannels: req.SalesChannels, ExperienceLevel: req.ExperienceLevel,
	}
	out, err := h.s.SaveProfile(uid, p)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

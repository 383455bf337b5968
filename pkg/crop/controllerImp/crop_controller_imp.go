package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"greengreen/pkg/apperr"
	"greengreen/pkg/crop/controller"
	"greengreen/pkg/crop/service"
)

const defaultSqFt = 100

type CropCtrl struct {
	s      service.CropService
	region string
}

func New(s service.CropService, region string) controller.CropController {
	return &CropCtrl{s: s, region: region}
}

func (h *CropCtrl) List(c echo.Context) error {
	list, err := h.s.List(c.QueryParam("category"))
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *CropCtrl) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	d, err := h.s.Detail(uint(id))
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, d)
}

func (h *CropCtrl) Calculate(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	sqft := float64(defaultSqFt)
	if v := c.QueryParam("sqft"); v != "" {
		if sqft, err = strconv.ParseFloat(v, 64); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid sqft"})
		}
	}
	out, err := h.s.Calculate(uint(id), sqft, c.QueryParam("channel"), h.region)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

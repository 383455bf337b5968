package controllerImp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"greengreen/pkg/apperr"
	"greengreen/pkg/usercrop/controller"
	"greengreen/pkg/usercrop/service"
)

type UserCropCtrl struct{ s service.UserCropService }

func New(s service.UserCropService) controller.UserCropController { return &UserCropCtrl{s} }

type createReq struct {
	CropID        uint     `json:"crop_id"`
	SqFtAllocated *float64 `json:"sqft_allocated"`
	PlantingDate  string   `json:"planting_date"`
	Notes         string   `json:"notes"`
}

func (h *UserCropCtrl) Create(c echo.Context) error {
	uid := c.Get("uid").(string)
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	in := service.NewUserCrop{CropID: req.CropID, SqFtAllocated: req.SqFtAllocated, Notes: req.Notes}
	if req.PlantingDate != "" {
		pd, err := time.Parse("2006-01-02", req.PlantingDate)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "planting_date must be YYYY-MM-DD"})
		}
		in.PlantingDate = &pd
	}
	uc, err := h.s.Add(uid, in)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusCreated, uc)
}

func (h *UserCropCtrl) List(c echo.Context) error {
	uid := c.Get("uid").(string)
	out, err := h.s.List(uid)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *UserCropCtrl) Patch(c echo.Context) error {
	uid := c.Get("uid").(string)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	uc, err := h.s.SetStatus(uint(id), uid, body.Status)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, uc)
}

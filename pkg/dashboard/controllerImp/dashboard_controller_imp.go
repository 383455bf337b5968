package controllerImp

import (
	"bytes"
	"net/http"

	"github.com/labstack/echo/v4"

	"greengreen/pkg/apperr"
	"greengreen/pkg/calculator"
	"greengreen/pkg/dashboard/controller"
	"greengreen/pkg/dashboard/service"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type DashboardCtrl struct{ svc service.DashboardService }

func NewDashboardCtrl(svc service.DashboardService) controller.DashboardController {
	return &DashboardCtrl{svc: svc}
}

func bindFilter(c echo.Context) (calculator.Filter, error) {
	var f calculator.Filter
	err := (&echo.DefaultBinder{}).BindQueryParams(c, &f)
	return f, err
}

func (h *DashboardCtrl) Dashboard(c echo.Context) error {
	uid := c.Get("uid").(string)
	f, err := bindFilter(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad query"})
	}
	v, err := h.svc.Dashboard(uid, f)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, v)
}

func (h *DashboardCtrl) PlantThisWeek(c echo.Context) error {
	uid := c.Get("uid").(string)
	recs, err := h.svc.PlantThisWeek(uid)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, recs)
}

func (h *DashboardCtrl) Export(c echo.Context) error {
	uid := c.Get("uid").(string)
	f, err := bindFilter(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad query"})
	}
	var buf bytes.Buffer
	if err := h.svc.Export(uid, f, &buf); err != nil {
		return apperr.JSON(c, err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="greengreen-ranking.xlsx"`)
	return c.Blob(http.StatusOK, xlsxMIME, buf.Bytes())
}

package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"greengreen/pkg/apperr"
	"greengreen/pkg/buyer"
	bsvc "greengreen/pkg/buyer/service"
)

type httpCtrl struct{ s bsvc.Service }

func New(s bsvc.Service) *httpCtrl { return &httpCtrl{s: s} }

// Register mounts the buyer routes on g, which must resolve a user.
func (h *httpCtrl) Register(g *echo.Group) {
	g.POST("/buyers", h.create)
	g.GET("/buyers", h.list)
}

func (h *httpCtrl) create(c echo.Context) error {
	var in buyer.Buyer
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	uid, _ := c.Get("uid").(string)
	if err := h.s.Create(uid, &in); err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusCreated, in)
}

func (h *httpCtrl) list(c echo.Context) error {
	list, err := h.s.List(c.QueryParam("state"), c.QueryParam("crop"))
	if err != nil {
		return apperr.JSON(c, err)
	}
	if list == nil {
		list = []buyer.Buyer{}
	}
	return c.JSON(http.StatusOK, list)
}

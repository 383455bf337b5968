package controllerImp

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"greengreen/pkg/apperr"
	"greengreen/pkg/auth/controller"
	"greengreen/pkg/auth/service"
	"greengreen/pkg/middleware"
)

type authCtrl struct {
	s   service.AuthService
	ttl time.Duration
}

func NewAuthController(s service.AuthService, ttl time.Duration) controller.AuthController {
	return &authCtrl{s: s, ttl: ttl}
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *authCtrl) Signup(c echo.Context) error {
	var req credentials
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	u, tok, err := h.s.Signup(req.Email, req.Password)
	if err != nil {
		return apperr.JSON(c, err)
	}
	h.setSession(c, tok, h.ttl)
	return c.JSON(http.StatusCreated, map[string]string{"uid": u.UserID, "email": u.Email})
}

func (h *authCtrl) Login(c echo.Context) error {
	var req credentials
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	u, tok, err := h.s.Login(req.Email, req.Password)
	if err != nil {
		return apperr.JSON(c, err)
	}
	h.setSession(c, tok, h.ttl)
	return c.JSON(http.StatusOK, map[string]string{"uid": u.UserID, "email": u.Email})
}

func (h *authCtrl) Logout(c echo.Context) error {
	h.setSession(c, "", -1)
	return c.NoContent(http.StatusNoContent)
}

func (h *authCtrl) WhoAmI(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	return c.JSON(http.StatusOK, map[string]string{"uid": uid})
}

func (h *authCtrl) setSession(c echo.Context, tok string, ttl time.Duration) {
	ck := &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    tok,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if ttl < 0 {
		ck.MaxAge = -1
	} else {
		ck.MaxAge = int(ttl.Seconds())
	}
	c.SetCookie(ck)
}

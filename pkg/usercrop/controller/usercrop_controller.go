package controller

import "github.com/labstack/echo/v4"

type UserCropController interface {
	Create(c echo.Context) error
	List(c echo.Context) error
	Patch(c echo.Context) error
}

package controller

import "github.com/labstack/echo/v4"

type ProfileController interface {
	Get(c echo.Context) error
	Put(c echo.Context) error
}

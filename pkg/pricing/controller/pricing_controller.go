package controller

import "github.com/labstack/echo/v4"

type PricingController interface {
	Import(c echo.Context) error
}

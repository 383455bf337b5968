package controller

import "github.com/labstack/echo/v4"

type DashboardController interface {
	Dashboard(c echo.Context) error
	PlantThisWeek(c echo.Context) error
	Export(c echo.Context) error
}

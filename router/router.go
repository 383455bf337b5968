package router

import (
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	authCtrl "greengreen/pkg/auth/controller"
	cropCtrl "greengreen/pkg/crop/controller"
	dashCtrl "greengreen/pkg/dashboard/controller"
	"greengreen/pkg/logging"
	"greengreen/pkg/metrics"
	"greengreen/pkg/middleware"
	pricingCtrl "greengreen/pkg/pricing/controller"
	profileCtrl "greengreen/pkg/profile/controller"
	usercropCtrl "greengreen/pkg/usercrop/controller"
)

// Controllers bundles every HTTP handler set the router mounts.
type Controllers struct {
	Auth     authCtrl.AuthController
	Profile  profileCtrl.ProfileController
	Crop     cropCtrl.CropController
	Dash     dashCtrl.DashboardController
	UserCrop usercropCtrl.UserCropController
	Pricing  pricingCtrl.PricingController
	Buyer    interface{ Register(*echo.Group) }
	Health   interface{ Health(echo.Context) error }
}

type Options struct {
	Log      *zap.Logger
	Metrics  *metrics.Metrics
	Sessions middleware.TokenParser
	DevLogin bool
	// Admins may run price imports.
	Admins []string
}

func New(e *echo.Echo, h Controllers, o Options) *echo.Echo {
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())
	e.Use(logging.Middleware(o.Log))
	if o.Metrics != nil {
		e.Use(o.Metrics.Middleware())
		e.GET("/metrics", echo.WrapHandler(o.Metrics.Handler()))
	}
	e.Use(middleware.Session(o.Sessions))
	if o.DevLogin {
		e.Use(middleware.DevLogin())
	}

	e.GET("/health", h.Health.Health)

	a := e.Group("/auth")
	a.POST("/signup", h.Auth.Signup)
	a.POST("/login", h.Auth.Login)
	a.POST("/logout", h.Auth.Logout)
	a.GET("/whoami", h.Auth.WhoAmI)

	// catalog is public
	e.GET("/crops", h.Crop.List)
	e.GET("/crops/:id", h.Crop.Get)
	e.GET("/crops/:id/calculate", h.Crop.Calculate)

	api := e.Group("", middleware.RequireUser())

	api.GET("/profile", h.Profile.Get)
	api.PUT("/profile", h.Profile.Put)

	api.GET("/dashboard", h.Dash.Dashboard)
	api.GET("/dashboard/plant-this-week", h.Dash.PlantThisWeek)
	api.GET("/dashboard/export.xlsx", h.Dash.Export)

	api.POST("/my-crops", h.UserCrop.Create)
	api.GET("/my-crops", h.UserCrop.List)
	api.PATCH("/my-crops/:id", h.UserCrop.Patch)

	h.Buyer.Register(api)

	admin := api.Group("/admin", middleware.RequireAdmin(o.Admins))
	admin.POST("/pricing/import", h.Pricing.Import)
	return e
}

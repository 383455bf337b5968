package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"greengreen/config"
	"greengreen/database"
	"greengreen/router"

	authCtrlImp "greengreen/pkg/auth/controllerImp"
	authRepoImp "greengreen/pkg/auth/repositoryImp"
	authSvcImp "greengreen/pkg/auth/serviceImp"

	buyerCtrlImp "greengreen/pkg/buyer/controllerImp"
	buyerRepoImp "greengreen/pkg/buyer/repositoryImp"
	buyerSvcImp "greengreen/pkg/buyer/serviceImp"

	cropCtrlImp "greengreen/pkg/crop/controllerImp"
	cropRepoImp "greengreen/pkg/crop/repositoryImp"
	cropSvcImp "greengreen/pkg/crop/serviceImp"

	dashCtrlImp "greengreen/pkg/dashboard/controllerImp"
	dashSvcImp "greengreen/pkg/dashboard/serviceImp"

	healthCtrlImp "greengreen/pkg/health/controllerImp"
	"greengreen/pkg/metrics"

	pricingCtrlImp "greengreen/pkg/pricing/controllerImp"
	pricingRepoImp "greengreen/pkg/pricing/repositoryImp"
	pricingSvcImp "greengreen/pkg/pricing/serviceImp"

	profileCtrlImp "greengreen/pkg/profile/controllerImp"
	profileRepoImp "greengreen/pkg/profile/repositoryImp"
	profileSvcImp "greengreen/pkg/profile/serviceImp"

	usercropCtrlImp "greengreen/pkg/usercrop/controllerImp"
	usercropRepoImp "greengreen/pkg/usercrop/repositoryImp"
	usercropSvcImp "greengreen/pkg/usercrop/serviceImp"
)

var seedOnStart bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := database.OpenSQLite(cfg.DBPath)
		if err != nil {
			return err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		defer sqlDB.Close()
		if seedOnStart {
			// a partially failed seed still leaves a usable catalog
			if err := seedCatalog(db, cfg.CatalogFile); err != nil {
				logger.Warn("seed on start", zap.String("op", "serve"), zap.Error(err))
			}
		}
		if cfg.GeneratedSecret {
			logger.Warn("no jwt secret configured; sessions end when the process exits", zap.String("op", "serve"))
		}
		if cfg.DevLogin {
			logger.Warn("dev login enabled; anonymous requests act as the dev user", zap.String("op", "serve"))
		}

		e := buildServer(cfg, db, logger, metrics.New())

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		go func() {
			logger.Info("listening", zap.String("op", "serve"), zap.String("port", cfg.Port), zap.String("db", cfg.DBPath))
			if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("server stopped", zap.String("op", "serve"), zap.Error(err))
				stop()
			}
		}()
		<-ctx.Done()

		shutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return e.Shutdown(shutdown)
	},
}

func init() {
	serveCmd.Flags().BoolVar(&seedOnStart, "seed", false, "seed the catalog before serving (existing crops are kept)")
}

// buildServer wires repositories, services and controllers onto a new echo
// instance.
func buildServer(cfg config.AppConfig, db *gorm.DB, log *zap.Logger, m *metrics.Metrics) *echo.Echo {
	cropRepo := cropRepoImp.New(db)
	profileRepo := profileRepoImp.New(db)

	authSvc := authSvcImp.NewAuthService(authRepoImp.New(db), cfg.JWTSecret, cfg.SessionTTL, log)
	dashSvc := dashSvcImp.NewDashboardService(cropRepo, profileRepo, cfg.DefaultRegion, m, log)
	pricingSvc := pricingSvcImp.NewPricingService(pricingRepoImp.New(db), cropRepo, m, log)

	h := router.Controllers{
		Auth:     authCtrlImp.NewAuthController(authSvc, cfg.SessionTTL),
		Profile:  profileCtrlImp.New(profileSvcImp.NewProfileService(profileRepo)),
		Crop:     cropCtrlImp.New(cropSvcImp.NewCropService(cropRepo), cfg.DefaultRegion),
		Dash:     dashCtrlImp.NewDashboardCtrl(dashSvc),
		UserCrop: usercropCtrlImp.New(usercropSvcImp.NewUserCropService(usercropRepoImp.New(db), cropRepo)),
		Pricing:  pricingCtrlImp.New(pricingSvc, cfg.PriceImportDomains),
		Buyer:    buyerCtrlImp.New(buyerSvcImp.New(buyerRepoImp.New(db))),
		Health:   healthCtrlImp.NewHealthCtrl(db),
	}
	return router.New(echo.New(), h, router.Options{
		Log:      log,
		Metrics:  m,
		Sessions: authSvc,
		DevLogin: cfg.DevLogin,
		Admins:   cfg.AdminUsers,
	})
}

package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"greengreen/entities"
)

var appStart = time.Now()

type HealthCtrl struct {
	db *gorm.DB
}

func NewHealthCtrl(db *gorm.DB) *HealthCtrl { return &HealthCtrl{db: db} }

type check struct {
	OK    bool   `json:"ok"`
	Err   string `json:"err,omitempty"`
	Count int64  `json:"count,omitempty"`
}

// Health pings the database and counts catalog crops. Only a failed ping
// makes the service unhealthy; an empty catalog is reported but still 200.
func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	db := check{OK: true}
	catalog := check{}
	switch {
	case h.db == nil:
		db = check{Err: "gorm db is nil"}
	default:
		if sqlDB, err := h.db.DB(); err != nil {
			db = check{Err: "db.DB(): " + err.Error()}
		} else if err := sqlDB.PingContext(ctx); err != nil {
			db = check{Err: "ping: " + err.Error()}
		}
	}
	if db.OK {
		if err := h.db.WithContext(ctx).Model(&entities.Crop{}).Count(&catalog.Count).Error; err != nil {
			catalog.Err = err.Error()
		} else if catalog.Count == 0 {
			catalog.Err = "no crops seeded"
		} else {
			catalog.OK = true
		}
	}

	status := http.StatusOK
	if !db.OK {
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, map[string]any{
		"status":     map[string]any{"ok": db.OK},
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"checks": map[string]any{
			"database": db,
			"catalog":  catalog,
		},
		"time": time.Now().UTC().Format(time.RFC3339),
	})
}

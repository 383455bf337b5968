package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddlewareCountsByRoute(t *testing.T) {
	m := New()
	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/crops/:id", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/missing/:id", func(c echo.Context) error { return echo.NewHTTPError(http.StatusNotFound) })

	for _, p := range []string{"/crops/1", "/crops/2", "/missing/3"} {
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, p, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("/crops/:id", "GET", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("/missing/:id", "GET", "404")))
}

func TestDomainCounters(t *testing.T) {
	m := New()
	m.Ranked(true)
	m.Ranked(false)
	m.Ranked(true)
	m.Recommended(4)
	m.Imported("accepted", 3)
	m.Imported("skipped", 0)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.rankings.WithLabelValues("true")))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.recommendations))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.imports.WithLabelValues("accepted")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.imports))

	var nilM *Metrics
	nilM.Ranked(true)
	nilM.Recommended(1)
	nilM.Imported("accepted", 1)
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := New()
	m.Recommended(2)
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "greengreen_plant_this_week_recommendations 2")
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/WorldsAreYours/fit-and-easy/internal/metrics"
)

func TestRequestMetrics_CountsByStatus(t *testing.T) {
	m := metrics.NewTestManager()
	e := echo.New()
	e.Use(RequestMetrics(m))
	e.GET("/exercises", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/missing", func(c echo.Context) error { return echo.NewHTTPError(http.StatusNotFound) })

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/exercises", nil))
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.CounterRequests.WithLabelValues("GET", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CounterRequests.WithLabelValues("GET", "404")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.GaugeRequests))
}

func TestPanicRecovery(t *testing.T) {
	m := metrics.NewTestManager()
	e := echo.New()
	e.Use(PanicRecovery(m))
	e.GET("/boom", func(c echo.Context) error { panic("boom") })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CounterHandleRequestPanic))
}

func TestRequestLogger_HandlesErrors(t *testing.T) {
	e := echo.New()
	e.Use(RequestLogger())
	e.GET("/bad", func(c echo.Context) error { return echo.NewHTTPError(http.StatusBadRequest, "bad") })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bad", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

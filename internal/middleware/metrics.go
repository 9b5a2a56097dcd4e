package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/WorldsAreYours/fit-and-easy/internal/metrics"
)

// RequestMetrics counts requests by method and status and observes their
// duration per route.
func RequestMetrics(m *metrics.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			m.GaugeRequests.Inc()
			defer m.GaugeRequests.Dec()

			err := next(c)
			status := c.Response().Status
			if err != nil {
				var he *echo.HTTPError
				if errors.As(err, &he) {
					status = he.Code
				} else {
					status = http.StatusInternalServerError
				}
			}
			m.CounterRequests.WithLabelValues(c.Request().Method, strconv.Itoa(status)).Inc()
			m.HistRequestDuration.WithLabelValues(c.Path()).Observe(time.Since(start).Seconds())
			return err
		}
	}
}

// PanicRecovery turns a handler panic into a 500 response and counts it.
func PanicRecovery(m *metrics.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					if m != nil {
						m.CounterHandleRequestPanic.Inc()
					}
					logrus.WithFields(logrus.Fields{
						"path":       c.Request().URL.Path,
						"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
					}).Errorf("panic while handling request: %v", r)
					err = echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
				}
			}()
			return next(c)
		}
	}
}

// Package router wires handlers and route-level middleware onto echo.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes registers the operational endpoints. /metrics is only
// mounted when a gatherer is given.
func RegisterRoutes(e *echo.Echo, health echo.HandlerFunc, gatherer prometheus.Gatherer) {
	e.GET("/health", health)
	e.GET("/healthz", health)
	if gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}
}

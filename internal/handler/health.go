package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type pinger interface {
	PingContext(ctx context.Context) error
}

// Health reports liveness along with database reachability. The status
// code is 200 even when the database is down.
func Health(db pinger) echo.HandlerFunc {
	return func(c echo.Context) error {
		status := "ok"
		if db == nil {
			status = "unavailable"
		} else {
			ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
			defer cancel()
			if err := db.PingContext(ctx); err != nil {
				status = "unavailable"
			}
		}
		return c.JSON(http.StatusOK, echo.Map{"status": "healthy", "database": status})
	}
}

package router

import (
	"github.com/labstack/echo/v4"

	"github.com/WorldsAreYours/fit-and-easy/internal/handler"
)

// RegisterUsers registers user endpoints together with the per-user
// workout history and generator.
func RegisterUsers(e *echo.Echo, h *handler.UserHandler) {
	g := e.Group("/users")
	g.POST("", h.Create)
	g.GET("/:id", h.Get)
	g.GET("/:id/workouts", h.ListWorkouts)
	g.POST("/:id/generate-workout", h.GenerateWorkout)
}

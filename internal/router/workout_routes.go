package router

import (
	"github.com/labstack/echo/v4"

	"github.com/WorldsAreYours/fit-and-easy/internal/handler"
)

func RegisterWorkouts(e *echo.Echo, h *handler.WorkoutHandler) {
	g := e.Group("/workouts")
	g.POST("", h.Create)
	g.GET("/:id", h.Get)
	g.POST("/:id/exercises", h.AddExercise)
}

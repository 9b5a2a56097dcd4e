package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/WorldsAreYours/fit-and-easy/internal/config"
	"github.com/WorldsAreYours/fit-and-easy/internal/handler"
	"github.com/WorldsAreYours/fit-and-easy/internal/middleware"
)

// RegisterCatalog registers the exercise catalog. Reads go through the
// Redis response cache and a successful create purges it. A nil client
// disables both.
func RegisterCatalog(e *echo.Echo, h *handler.ExerciseHandler, cacheCfg config.CacheConfig, rdb *redis.Client) {
	cached := middleware.NewRedisCache(cacheCfg, rdb)

	e.POST("/exercises", h.Create, middleware.InvalidateCache(cacheCfg, rdb))
	e.GET("/exercises", h.List, cached)
	e.GET("/exercises/search", h.Search, cached)
	e.GET("/exercises/:id", h.Get, cached)

	e.GET("/muscle-groups", h.MuscleGroups, cached)
	e.GET("/muscle-groups/categories", h.Categories, cached)
	e.GET("/equipment", h.Equipment, cached)
}

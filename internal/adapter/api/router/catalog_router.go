package router

import (
	"lokapasar/internal/adapter/api/handler"
	"lokapasar/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupCatalogRouter(e *echo.Echo, rateLimitMiddleware *middleware.RateLimitMiddleware) {
	catalogHandler := handler.GetCatalogHandler()

	catalog := e.Group("/v1/catalog")
	catalog.Use(rateLimitMiddleware.Limit)
	catalog.GET("", catalogHandler.GetSnapshot)
	catalog.GET("/search", catalogHandler.Search)
	catalog.GET("/category/:category", catalogHandler.Browse)
	catalog.POST("/brands/:brand/toggle", catalogHandler.ToggleBrand)
	catalog.PUT("/condition", catalogHandler.SetCondition)
	catalog.PUT("/price-range", catalogHandler.SetPriceRange)
	catalog.PUT("/sort", catalogHandler.SetSort)
	catalog.PUT("/page", catalogHandler.GoToPage)
	catalog.DELETE("/filters", catalogHandler.ClearFilters)
}

package router

import (
	"lokapasar/internal/adapter/api/handler"
	"lokapasar/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupProductRouter(e *echo.Echo, rateLimitMiddleware *middleware.RateLimitMiddleware) {
	productHandler := handler.GetProductHandler()
	reviewHandler := handler.GetReviewHandler()

	products := e.Group("/v1/products")
	products.Use(rateLimitMiddleware.Limit)
	products.DELETE("/selected", productHandler.ClearSelected)
	products.GET("/:id", productHandler.GetProduct)
	products.GET("/:id/reviews", reviewHandler.GetReviews)
	products.POST("/:id/reviews", reviewHandler.CreateReview)
}

package router

import (
	"lokapasar/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func Setup(e *echo.Echo, rateLimitMiddleware *middleware.RateLimitMiddleware) {
	SetupHealthRouter(e)
	SetupCatalogRouter(e, rateLimitMiddleware)
	SetupProductRouter(e, rateLimitMiddleware)
}

package main

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"lokapasar/internal/adapter/api"
	"lokapasar/internal/adapter/api/handler"
	apimiddleware "lokapasar/internal/adapter/api/middleware"
	"lokapasar/internal/adapter/api/router"
	"lokapasar/internal/adapter/repository"
	"lokapasar/internal/infrastructure/catalogapi"
	"lokapasar/internal/infrastructure/ratelimit"
	"lokapasar/internal/infrastructure/websocket"
	"lokapasar/internal/usecase"
	"lokapasar/pkg/config"
	"lokapasar/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	catalogClient := catalogapi.NewClient(cfg.CatalogAPIURL, cfg.CatalogFetchTimeout)
	fallback := repository.FallbackCatalog()
	reviewRepo := repository.NewMemoryReviewRepository()

	reviewUseCase := usecase.NewReviewUseCase(reviewRepo)
	productUseCase := usecase.NewProductUseCase(catalogClient, fallback, reviewUseCase)
	catalogUseCase := usecase.NewCatalogUseCase(catalogClient, fallback, cfg.PageSize)

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)

	// every recomputed query state is streamed to connected sessions
	catalogUseCase.Subscribe(func(snap usecase.QuerySnapshot) {
		payload, err := json.Marshal(snap)
		if err != nil {
			logger.Error("marshal snapshot: %v", err)
			return
		}
		wsManager.Broadcast(payload)
	})

	handler.Setup(catalogUseCase, productUseCase, reviewUseCase)

	e := echo.New()

	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())

	e.Validator = api.NewValidator()

	limiter := ratelimit.NewRateLimiter(cfg.RateLimitBurst, cfg.RateLimitRefill, time.Second)
	rateLimitMiddleware := apimiddleware.NewRateLimitMiddleware(limiter)

	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				limiter.Cleanup()
			case <-ctx.Done():
				return
			}
		}
	}()

	wsHandler := handler.NewWebSocketHandler(wsManager, catalogUseCase)

	router.Setup(e, rateLimitMiddleware)
	router.SetupWebSocketRouter(e, wsHandler)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}

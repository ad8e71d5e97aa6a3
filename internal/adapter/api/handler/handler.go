package handler

import (
	"lokapasar/internal/usecase"
)

var (
	catalogHandler *CatalogHandler
	productHandler *ProductHandler
	reviewHandler  *ReviewHandler
)

func Setup(
	catalogUseCase *usecase.CatalogUseCase,
	productUseCase *usecase.ProductUseCase,
	reviewUseCase *usecase.ReviewUseCase,
) {
	catalogHandler = NewCatalogHandler(catalogUseCase)
	productHandler = NewProductHandler(productUseCase)
	reviewHandler = NewReviewHandler(productUseCase, reviewUseCase)
}

func GetCatalogHandler() *CatalogHandler {
	return catalogHandler
}

func GetProductHandler() *ProductHandler {
	return productHandler
}

func GetReviewHandler() *ReviewHandler {
	return reviewHandler
}

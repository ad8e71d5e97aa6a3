package handler

import (
	"lokapasar/internal/usecase"
	"lokapasar/pkg/response"

	"github.com/labstack/echo/v4"
)

type ProductHandler struct {
	productUseCase *usecase.ProductUseCase
}

func NewProductHandler(productUseCase *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
	}
}

type productDetailResponse struct {
	Product interface{} `json:"product"`
	Reviews interface{} `json:"reviews"`
}

// GetProduct resolves a product by identity from the merged catalog,
// independent of any active search. A miss renders the envelope's
// not-found error rather than a bare 500.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	id := c.Param("id")

	product, err := h.productUseCase.GetProductByID(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	_, reviews := h.productUseCase.Selected()

	return response.Success(c, productDetailResponse{
		Product: product,
		Reviews: reviews,
	})
}

func (h *ProductHandler) ClearSelected(c echo.Context) error {
	h.productUseCase.ClearSelected()
	return response.Success(c, nil)
}

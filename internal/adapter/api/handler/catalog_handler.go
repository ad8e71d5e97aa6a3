package handler

import (
	"lokapasar/internal/usecase"
	"lokapasar/pkg/errors"
	"lokapasar/pkg/response"

	"github.com/labstack/echo/v4"
)

type CatalogHandler struct {
	catalogUseCase *usecase.CatalogUseCase
}

func NewCatalogHandler(catalogUseCase *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{
		catalogUseCase: catalogUseCase,
	}
}

// GetSnapshot returns the current derived query state without mutating it.
func (h *CatalogHandler) GetSnapshot(c echo.Context) error {
	return response.Success(c, h.catalogUseCase.Snapshot())
}

func (h *CatalogHandler) Search(c echo.Context) error {
	term := c.QueryParam("q")
	keepFilters := c.QueryParam("keep_filters") == "true"

	snap := h.catalogUseCase.Search(c.Request().Context(), term, keepFilters)
	return response.Success(c, snap)
}

func (h *CatalogHandler) Browse(c echo.Context) error {
	category := c.Param("category")
	if category == "" {
		return response.Error(c, errors.BadRequest("Category is required", nil))
	}
	keepFilters := c.QueryParam("keep_filters") == "true"

	snap := h.catalogUseCase.Browse(c.Request().Context(), category, keepFilters)
	return response.Success(c, snap)
}

func (h *CatalogHandler) ToggleBrand(c echo.Context) error {
	brand := c.Param("brand")
	if brand == "" {
		return response.Error(c, errors.BadRequest("Brand is required", nil))
	}

	return response.Success(c, h.catalogUseCase.ToggleBrand(brand))
}

type setConditionRequest struct {
	Condition string `json:"condition" validate:"omitempty,oneof=new used"`
}

func (h *CatalogHandler) SetCondition(c echo.Context) error {
	var req setConditionRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, h.catalogUseCase.SetCondition(req.Condition))
}

type setPriceRangeRequest struct {
	Min *float64 `json:"min" validate:"omitempty,gte=0"`
	Max *float64 `json:"max" validate:"omitempty,gte=0"`
}

func (h *CatalogHandler) SetPriceRange(c echo.Context) error {
	var req setPriceRangeRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if req.Min != nil && req.Max != nil && *req.Min > *req.Max {
		return response.Error(c, errors.BadRequest("min cannot exceed max", nil))
	}

	return response.Success(c, h.catalogUseCase.SetPriceRange(req.Min, req.Max))
}

type setSortRequest struct {
	Sort string `json:"sort" validate:"required,oneof=relevance price_asc price_desc rating_desc"`
}

func (h *CatalogHandler) SetSort(c echo.Context) error {
	var req setSortRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, h.catalogUseCase.SetSort(req.Sort))
}

type goToPageRequest struct {
	Page int `json:"page" validate:"required,min=1"`
}

// GoToPage navigates the current result set. Out-of-range pages are not an
// error; the orchestrator leaves the state untouched and the handler
// returns the unchanged snapshot.
func (h *CatalogHandler) GoToPage(c echo.Context) error {
	var req goToPageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, h.catalogUseCase.GoToPage(req.Page))
}

func (h *CatalogHandler) ClearFilters(c echo.Context) error {
	return response.Success(c, h.catalogUseCase.ClearFilters())
}

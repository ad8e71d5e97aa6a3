package handler

import (
	"lokapasar/internal/usecase"
	"lokapasar/pkg/errors"
	"lokapasar/pkg/response"
	"lokapasar/pkg/utils"

	"github.com/labstack/echo/v4"
)

type ReviewHandler struct {
	productUseCase *usecase.ProductUseCase
	reviewUseCase  *usecase.ReviewUseCase
}

func NewReviewHandler(productUseCase *usecase.ProductUseCase, reviewUseCase *usecase.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{
		productUseCase: productUseCase,
		reviewUseCase:  reviewUseCase,
	}
}

func (h *ReviewHandler) GetReviews(c echo.Context) error {
	productID := c.Param("id")
	if productID == "" {
		return response.Error(c, errors.BadRequest("Product ID is required", nil))
	}

	reviews, err := h.reviewUseCase.LoadReviews(c.Request().Context(), productID)
	if err != nil {
		return response.Error(c, err)
	}

	params := utils.GetPaginationParams(c)
	total := int64(len(reviews))

	start := (params.Page - 1) * params.PageSize
	if start > len(reviews) {
		start = len(reviews)
	}
	end := start + params.PageSize
	if end > len(reviews) {
		end = len(reviews)
	}

	return response.Paginated(c, reviews[start:end], total, params.Page, params.PageSize)
}

type createReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Content string `json:"content" validate:"required"`
}

// CreateReview validates the submission here; the review core stores
// whatever it is given.
func (h *ReviewHandler) CreateReview(c echo.Context) error {
	productID := c.Param("id")
	if productID == "" {
		return response.Error(c, errors.BadRequest("Product ID is required", nil))
	}

	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	review, err := h.productUseCase.AddReview(c.Request().Context(), productID, usecase.AddReviewInput{
		Rating:  req.Rating,
		Content: req.Content,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, review)
}

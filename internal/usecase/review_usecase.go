package usecase

import (
	"context"
	"time"

	"lokapasar/internal/domain/entity"
	"lokapasar/internal/domain/repository"

	"github.com/google/uuid"
)

// The storefront session has no authentication; every submitted review is
// attributed to the fixed current user.
const (
	currentUserID   = "u-current"
	currentUserName = "Guest"
)

type ReviewUseCase struct {
	reviewRepo repository.ReviewRepository
}

func NewReviewUseCase(reviewRepo repository.ReviewRepository) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo: reviewRepo,
	}
}

type AddReviewInput struct {
	Rating  int
	Content string
}

// LoadReviews returns the product's reviews, newest first.
func (uc *ReviewUseCase) LoadReviews(ctx context.Context, productID string) ([]*entity.Review, error) {
	return uc.reviewRepo.ListByProductID(ctx, productID)
}

// AddReview constructs a review with a generated identity and the current
// timestamp and prepends it to the product's list. Rating and content
// validation is the caller's precondition; nothing is checked here.
func (uc *ReviewUseCase) AddReview(ctx context.Context, productID string, input AddReviewInput) (*entity.Review, error) {
	review := &entity.Review{
		ID:         uuid.NewString(),
		ProductID:  productID,
		AuthorID:   currentUserID,
		AuthorName: currentUserName,
		Rating:     input.Rating,
		Content:    input.Content,
		CreatedAt:  time.Now(),
	}

	if err := uc.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	return review, nil
}

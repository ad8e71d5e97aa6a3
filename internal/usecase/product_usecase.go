package usecase

import (
	"context"
	"sync"

	"lokapasar/internal/domain/entity"
	"lokapasar/internal/domain/repository"
	"lokapasar/pkg/errors"
)

// ProductUseCase resolves single products from the merged catalog,
// independent of any active search term or filters, and owns the selected
// product's review list.
type ProductUseCase struct {
	provider      repository.CatalogProvider
	fallback      []entity.Product
	reviewUseCase *ReviewUseCase

	mu       sync.Mutex
	selected *entity.Product
	reviews  []*entity.Review
}

func NewProductUseCase(provider repository.CatalogProvider, fallback []entity.Product, reviewUseCase *ReviewUseCase) *ProductUseCase {
	return &ProductUseCase{
		provider:      provider,
		fallback:      fallback,
		reviewUseCase: reviewUseCase,
	}
}

// GetProductByID looks the identity up in the merged catalog. A miss is a
// typed not-found result, not a panic, so the UI can render a dedicated
// message. A hit clears previously loaded reviews and loads the product's
// own list.
func (uc *ProductUseCase) GetProductByID(ctx context.Context, id string) (*entity.Product, error) {
	catalog, _ := loadMergedCatalog(ctx, uc.provider, uc.fallback)

	var found *entity.Product
	for i := range catalog {
		if catalog[i].ID == id {
			found = &catalog[i]
			break
		}
	}

	if found == nil {
		uc.mu.Lock()
		uc.selected = nil
		uc.reviews = nil
		uc.mu.Unlock()
		return nil, errors.NotFound("Product", nil)
	}

	uc.mu.Lock()
	uc.selected = found
	uc.reviews = nil
	uc.mu.Unlock()

	reviews, err := uc.reviewUseCase.LoadReviews(ctx, id)
	if err != nil {
		return nil, err
	}

	uc.mu.Lock()
	// a concurrent resolve may have replaced the selection meanwhile
	if uc.selected != nil && uc.selected.ID == id {
		uc.reviews = reviews
	}
	uc.mu.Unlock()

	return found, nil
}

// Selected returns the currently resolved product and its review list.
func (uc *ProductUseCase) Selected() (*entity.Product, []*entity.Review) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.selected, append([]*entity.Review(nil), uc.reviews...)
}

// ClearSelected resets the detail state.
func (uc *ProductUseCase) ClearSelected() {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.selected = nil
	uc.reviews = nil
}

// AddReview stores a review for the product and, when it targets the
// selected product, prepends it to the cached list.
func (uc *ProductUseCase) AddReview(ctx context.Context, productID string, input AddReviewInput) (*entity.Review, error) {
	review, err := uc.reviewUseCase.AddReview(ctx, productID, input)
	if err != nil {
		return nil, err
	}

	uc.mu.Lock()
	if uc.selected != nil && uc.selected.ID == productID {
		uc.reviews = append([]*entity.Review{review}, uc.reviews...)
	}
	uc.mu.Unlock()

	return review, nil
}

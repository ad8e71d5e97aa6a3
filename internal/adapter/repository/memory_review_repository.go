package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"lokapasar/internal/domain/entity"
)

// MemoryReviewRepository keeps per-product review lists in process memory.
// Reviews are only ever appended; nothing is deleted.
type MemoryReviewRepository struct {
	mu      sync.RWMutex
	reviews map[string][]*entity.Review
}

func NewMemoryReviewRepository() *MemoryReviewRepository {
	return &MemoryReviewRepository{
		reviews: seedReviews(),
	}
}

func (r *MemoryReviewRepository) ListByProductID(ctx context.Context, productID string) ([]*entity.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := append([]*entity.Review(nil), r.reviews[productID]...)
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})

	return list, nil
}

func (r *MemoryReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.reviews[review.ProductID] = append([]*entity.Review{review}, r.reviews[review.ProductID]...)
	return nil
}

func seedReviews() map[string][]*entity.Review {
	base := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

	return map[string][]*entity.Review{
		"fb-1": {
			{
				ID:         "rev-101",
				ProductID:  "fb-1",
				AuthorID:   "u-301",
				AuthorName: "Dewi",
				Rating:     5,
				Content:    "Arrived fast, exactly as described.",
				CreatedAt:  base.Add(48 * time.Hour),
			},
			{
				ID:         "rev-100",
				ProductID:  "fb-1",
				AuthorID:   "u-287",
				AuthorName: "Rizky",
				Rating:     4,
				Content:    "Good value, packaging could be better.",
				CreatedAt:  base,
			},
		},
		"fb-4": {
			{
				ID:         "rev-102",
				ProductID:  "fb-4",
				AuthorID:   "u-112",
				AuthorName: "Sari",
				Rating:     5,
				Content:    "Battery life is excellent for the price.",
				CreatedAt:  base.Add(24 * time.Hour),
			},
		},
	}
}

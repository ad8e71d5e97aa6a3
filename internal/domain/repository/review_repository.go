package repository

import (
	"context"

	"lokapasar/internal/domain/entity"
)

type ReviewRepository interface {
	ListByProductID(ctx context.Context, productID string) ([]*entity.Review, error)
	Create(ctx context.Context, review *entity.Review) error
}

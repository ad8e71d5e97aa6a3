package repository

import (
	"context"
	"testing"
	"time"

	"lokapasar/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListByProductIDNewestFirst(t *testing.T) {
	repo := NewMemoryReviewRepository()

	reviews, err := repo.ListByProductID(context.Background(), "fb-1")

	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.True(t, reviews[0].CreatedAt.After(reviews[1].CreatedAt))
}

func TestCreatePrepends(t *testing.T) {
	repo := NewMemoryReviewRepository()

	review := &entity.Review{
		ID:        "rev-new",
		ProductID: "fb-1",
		Rating:    3,
		Content:   "okay",
		CreatedAt: time.Now(),
	}
	require.NoError(t, repo.Create(context.Background(), review))

	reviews, err := repo.ListByProductID(context.Background(), "fb-1")
	require.NoError(t, err)
	require.Len(t, reviews, 3)
	assert.Equal(t, "rev-new", reviews[0].ID)
}

func TestUnknownProductHasNoReviews(t *testing.T) {
	repo := NewMemoryReviewRepository()

	reviews, err := repo.ListByProductID(context.Background(), "nope")

	require.NoError(t, err)
	assert.Empty(t, reviews)
}

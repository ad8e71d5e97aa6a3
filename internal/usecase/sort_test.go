package usecase

import (
	"testing"

	"lokapasar/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func rating(v float64) *float64 { return &v }

func TestSortRelevanceKeepsOrder(t *testing.T) {
	products := []entity.Product{{ID: "b"}, {ID: "a"}, {ID: "c"}}

	sorted := sortProducts(products, SortRelevance)

	assert.Equal(t, []string{"b", "a", "c"}, ids(sorted))
}

func TestSortPriceAscStable(t *testing.T) {
	products := []entity.Product{
		{ID: "1", Price: 100},
		{ID: "2", Price: 50},
		{ID: "3", Price: 100},
		{ID: "4", Price: 25},
	}

	sorted := sortProducts(products, SortPriceAsc)

	assert.Equal(t, []string{"4", "2", "1", "3"}, ids(sorted), "equal prices keep input order")
}

func TestSortPriceDesc(t *testing.T) {
	products := []entity.Product{
		{ID: "1", Price: 100},
		{ID: "2", Price: 50},
		{ID: "3", Price: 450},
	}

	sorted := sortProducts(products, SortPriceDesc)

	assert.Equal(t, []string{"3", "1", "2"}, ids(sorted))
}

func TestSortRatingDescUnratedLast(t *testing.T) {
	products := []entity.Product{
		{ID: "unrated-1"},
		{ID: "low", Rating: rating(0)},
		{ID: "high", Rating: rating(4.8)},
		{ID: "unrated-2"},
		{ID: "mid", Rating: rating(3.1)},
	}

	sorted := sortProducts(products, SortRatingDesc)

	// an explicit 0 rating still ranks above every unrated product
	assert.Equal(t, []string{"high", "mid", "low", "unrated-1", "unrated-2"}, ids(sorted))
}

func TestSortDoesNotMutateInput(t *testing.T) {
	products := []entity.Product{
		{ID: "1", Price: 100},
		{ID: "2", Price: 50},
	}

	_ = sortProducts(products, SortPriceAsc)

	assert.Equal(t, []string{"1", "2"}, ids(products))
}

package usecase

import (
	"fmt"
	"testing"

	"lokapasar/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numberedProducts(n int) []entity.Product {
	products := make([]entity.Product, n)
	for i := range products {
		products[i] = entity.Product{ID: fmt.Sprintf("p-%d", i)}
	}
	return products
}

func TestPaginateTotalPages(t *testing.T) {
	tests := []struct {
		count    int
		pageSize int
		want     int
	}{
		{0, 3, 1}, // never 0 pages
		{1, 3, 1},
		{3, 3, 1},
		{4, 3, 2},
		{6, 3, 2},
		{7, 3, 3},
		{100, 12, 9},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d items %d per page", tt.count, tt.pageSize), func(t *testing.T) {
			_, totalPages := paginate(numberedProducts(tt.count), 1, tt.pageSize)
			assert.Equal(t, tt.want, totalPages)
		})
	}
}

func TestPaginateConcatenationReproducesInput(t *testing.T) {
	products := numberedProducts(7)

	var all []entity.Product
	_, totalPages := paginate(products, 1, 3)
	for page := 1; page <= totalPages; page++ {
		slice, _ := paginate(products, page, 3)
		all = append(all, slice...)
	}

	assert.Equal(t, products, all)
}

func TestPaginateEmptyPageIsValid(t *testing.T) {
	slice, totalPages := paginate(nil, 1, 3)

	require.NotNil(t, slice)
	assert.Empty(t, slice)
	assert.Equal(t, 1, totalPages)
}

func TestPaginateBeyondEndReturnsEmptySlice(t *testing.T) {
	slice, totalPages := paginate(numberedProducts(6), 3, 3)

	assert.Empty(t, slice)
	assert.Equal(t, 2, totalPages)
}

package usecase

import (
	"lokapasar/internal/domain/entity"
)

// paginate slices an ordered list into the requested 1-indexed page.
// totalPages never drops below 1: an empty catalog still has one empty,
// displayable page.
func paginate(products []entity.Product, page, pageSize int) ([]entity.Product, int) {
	totalPages := (len(products) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	start := (page - 1) * pageSize
	if start >= len(products) {
		return []entity.Product{}, totalPages
	}

	end := start + pageSize
	if end > len(products) {
		end = len(products)
	}

	return append([]entity.Product(nil), products[start:end]...), totalPages
}

package usecase

import (
	"strings"

	"lokapasar/internal/domain/entity"
)

// Filters holds the user-selected facets. Zero values mean "not selected".
type Filters struct {
	Brands    map[string]bool
	Condition string
	MinPrice  *float64
	MaxPrice  *float64
}

func newFilters() Filters {
	return Filters{Brands: make(map[string]bool)}
}

// applyFilters keeps products matching every active facet. Input order is
// preserved; this never sorts.
func applyFilters(products []entity.Product, filters Filters) []entity.Product {
	result := make([]entity.Product, 0, len(products))

	for _, p := range products {
		if filters.Condition != "" && p.Condition != filters.Condition {
			continue
		}
		if len(filters.Brands) > 0 {
			// brandless products never match an active brand filter
			if p.Brand == "" || !filters.Brands[p.Brand] {
				continue
			}
		}
		if filters.MinPrice != nil && p.Price < *filters.MinPrice {
			continue
		}
		if filters.MaxPrice != nil && p.Price > *filters.MaxPrice {
			continue
		}
		result = append(result, p)
	}

	return result
}

// filterByTerm narrows the catalog by case-insensitive name containment.
// An empty term keeps everything.
func filterByTerm(products []entity.Product, term string) []entity.Product {
	if term == "" {
		return append([]entity.Product(nil), products...)
	}

	needle := strings.ToLower(term)
	result := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			result = append(result, p)
		}
	}

	return result
}

// filterByCategory keeps products in the given category (case-insensitive).
func filterByCategory(products []entity.Product, category string) []entity.Product {
	if category == "" {
		return append([]entity.Product(nil), products...)
	}

	result := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if strings.EqualFold(p.Category, category) {
			result = append(result, p)
		}
	}

	return result
}

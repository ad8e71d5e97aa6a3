package usecase

import (
	"sort"

	"lokapasar/internal/domain/entity"
)

const (
	SortRelevance  = "relevance"
	SortPriceAsc   = "price_asc"
	SortPriceDesc  = "price_desc"
	SortRatingDesc = "rating_desc"
)

func isValidSort(order string) bool {
	switch order {
	case SortRelevance, SortPriceAsc, SortPriceDesc, SortRatingDesc:
		return true
	}
	return false
}

// sortProducts returns a new ordering of products; the input is never
// mutated. Relevance keeps the upstream order, which already reflects
// term-match order from the merge.
func sortProducts(products []entity.Product, order string) []entity.Product {
	result := append([]entity.Product(nil), products...)

	switch order {
	case SortPriceAsc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price < result[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price > result[j].Price
		})
	case SortRatingDesc:
		// unrated products sort after every rated product, they are not
		// zero-equivalent
		sort.SliceStable(result, func(i, j int) bool {
			ri, rj := result[i].Rating, result[j].Rating
			if ri == nil {
				return false
			}
			if rj == nil {
				return true
			}
			return *ri > *rj
		})
	}

	return result
}

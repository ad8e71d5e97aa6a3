package usecase

import (
	"testing"

	"lokapasar/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(v float64) *float64 { return &v }

func testProducts() []entity.Product {
	return []entity.Product{
		{ID: "1", Name: "Wireless Earbuds", Brand: "Soundline", Condition: entity.ConditionNew, Price: 45},
		{ID: "2", Name: "Keyboard", Brand: "Keylab", Condition: entity.ConditionNew, Price: 80},
		{ID: "3", Name: "Running Shoes", Brand: "Langkah", Condition: entity.ConditionNew, Price: 119},
		{ID: "4", Name: "Smartwatch", Brand: "Soundline", Condition: entity.ConditionNew, Price: 450},
		{ID: "5", Name: "Film Camera", Brand: "Optik", Condition: entity.ConditionUsed, Price: 799},
		{ID: "6", Name: "Bike Frame", Condition: entity.ConditionUsed, Price: 1599},
	}
}

func ids(products []entity.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestApplyFiltersPriceRangeInclusive(t *testing.T) {
	filtered := applyFilters(testProducts(), Filters{MinPrice: price(80), MaxPrice: price(799)})

	assert.Equal(t, []string{"2", "3", "4", "5"}, ids(filtered), "both bounds are inclusive")
}

func TestApplyFiltersBrandExcludesBrandless(t *testing.T) {
	filtered := applyFilters(testProducts(), Filters{Brands: map[string]bool{"Soundline": true, "Optik": true}})

	assert.Equal(t, []string{"1", "4", "5"}, ids(filtered))

	// product 6 has no brand and never matches an active brand filter
	filtered = applyFilters(testProducts(), Filters{Brands: map[string]bool{"Soundline": true}})
	for _, p := range filtered {
		assert.NotEqual(t, "6", p.ID)
	}
}

func TestApplyFiltersCondition(t *testing.T) {
	filtered := applyFilters(testProducts(), Filters{Condition: entity.ConditionUsed})

	assert.Equal(t, []string{"5", "6"}, ids(filtered))
}

func TestApplyFiltersCombinesWithAnd(t *testing.T) {
	filtered := applyFilters(testProducts(), Filters{
		Brands:    map[string]bool{"Soundline": true},
		Condition: entity.ConditionNew,
		MinPrice:  price(100),
	})

	assert.Equal(t, []string{"4"}, ids(filtered))
}

func TestApplyFiltersPreservesOrder(t *testing.T) {
	filtered := applyFilters(testProducts(), Filters{Condition: entity.ConditionNew})

	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(filtered))
}

func TestFilterByTermContainment(t *testing.T) {
	result := filterByTerm(testProducts(), "WIRE")
	require.Len(t, result, 1)
	assert.Equal(t, "1", result[0].ID)

	// empty term keeps everything
	assert.Len(t, filterByTerm(testProducts(), ""), 6)
}

func TestFilterByCategoryExactMatch(t *testing.T) {
	products := []entity.Product{
		{ID: "1", Category: "electronics"},
		{ID: "2", Category: "sports"},
		{ID: "3"},
	}

	result := filterByCategory(products, "Electronics")
	require.Len(t, result, 1)
	assert.Equal(t, "1", result[0].ID)
}

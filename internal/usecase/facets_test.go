package usecase

import (
	"testing"

	"lokapasar/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestSummarizeFacets(t *testing.T) {
	summary := summarizeFacets(testProducts())

	assert.Equal(t, []string{"Keylab", "Langkah", "Optik", "Soundline"}, summary.Brands, "distinct brands, alphabetical, brandless products contribute nothing")
	assert.Equal(t, []string{entity.ConditionNew, entity.ConditionUsed}, summary.Conditions)
	assert.Equal(t, 45.0, summary.PriceMin)
	assert.Equal(t, 1599.0, summary.PriceMax)
}

func TestSummarizeFacetsSingleCondition(t *testing.T) {
	products := []entity.Product{
		{ID: "1", Condition: entity.ConditionUsed, Price: 10},
	}

	summary := summarizeFacets(products)

	assert.Equal(t, []string{entity.ConditionUsed}, summary.Conditions)
	assert.Empty(t, summary.Brands)
}

func TestSummarizeFacetsEmptyInput(t *testing.T) {
	summary := summarizeFacets(nil)

	assert.Empty(t, summary.Brands)
	assert.Empty(t, summary.Conditions)
	assert.Equal(t, 0.0, summary.PriceMin)
	assert.Equal(t, 0.0, summary.PriceMax)
}

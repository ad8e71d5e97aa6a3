package usecase

import (
	"sort"

	"lokapasar/internal/domain/entity"
)

// FacetSummary lists the facet values available within a candidate list.
// It is always computed from the base result set so the UI can offer
// options the user has not selected yet.
type FacetSummary struct {
	Brands     []string `json:"brands"`
	Conditions []string `json:"conditions"`
	PriceMin   float64  `json:"price_min"`
	PriceMax   float64  `json:"price_max"`
}

func summarizeFacets(products []entity.Product) FacetSummary {
	summary := FacetSummary{
		Brands:     []string{},
		Conditions: []string{},
	}

	if len(products) == 0 {
		return summary
	}

	brandSet := make(map[string]bool)
	hasNew, hasUsed := false, false
	summary.PriceMin = products[0].Price
	summary.PriceMax = products[0].Price

	for _, p := range products {
		if p.Brand != "" {
			brandSet[p.Brand] = true
		}
		switch p.Condition {
		case entity.ConditionNew:
			hasNew = true
		case entity.ConditionUsed:
			hasUsed = true
		}
		if p.Price < summary.PriceMin {
			summary.PriceMin = p.Price
		}
		if p.Price > summary.PriceMax {
			summary.PriceMax = p.Price
		}
	}

	for brand := range brandSet {
		summary.Brands = append(summary.Brands, brand)
	}
	sort.Strings(summary.Brands)

	// canonical order: new before used
	if hasNew {
		summary.Conditions = append(summary.Conditions, entity.ConditionNew)
	}
	if hasUsed {
		summary.Conditions = append(summary.Conditions, entity.ConditionUsed)
	}

	return summary
}

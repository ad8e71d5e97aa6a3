package usecase

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"lokapasar/internal/domain/entity"
	"lokapasar/internal/domain/repository"
	"lokapasar/pkg/logger"

	"github.com/google/uuid"
)

// mapRawProduct normalizes a provider record into a Product. It is total:
// any missing or malformed field falls back to a defined default.
func mapRawProduct(raw entity.RawProduct) entity.Product {
	id := raw.ID
	if id == "" {
		id = raw.ProductID
	}
	if id == "" {
		id = raw.SKU
	}
	if id == "" {
		id = "prod-" + uuid.NewString()
	}

	condition := entity.ConditionNew
	if raw.Status == entity.ConditionUsed {
		condition = entity.ConditionUsed
	}

	images := raw.Images
	if images == nil {
		images = []string{}
	}

	product := entity.Product{
		ID:        id,
		Name:      raw.Name,
		Price:     coercePrice(raw.Price),
		Images:    images,
		Rating:    raw.Rating,
		Brand:     raw.Brand,
		Category:  raw.Category,
		Condition: condition,
		Variants:  raw.Variants,
		Shop:      raw.Shop,
	}

	if raw.FreeShipping != nil {
		product.FreeShipping = *raw.FreeShipping
	}
	if raw.Featured != nil {
		product.Featured = *raw.Featured
	}

	return product
}

// coercePrice accepts the provider's string-or-number price field.
// Unparseable values become 0.
func coercePrice(v interface{}) float64 {
	switch p := v.(type) {
	case float64:
		return p
	case int:
		return float64(p)
	case json.Number:
		f, err := p.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// mergeCatalogs combines the remote catalog with the fallback dataset.
// Remote products come first in their original order; fallback products are
// appended only when their identity is not already taken.
func mergeCatalogs(remote, fallback []entity.Product) []entity.Product {
	merged := make([]entity.Product, 0, len(remote)+len(fallback))
	seen := make(map[string]bool, len(remote))

	for _, p := range remote {
		merged = append(merged, p)
		seen[p.ID] = true
	}

	for _, p := range fallback {
		if !seen[p.ID] {
			merged = append(merged, p)
			seen[p.ID] = true
		}
	}

	return merged
}

// loadMergedCatalog fetches the remote catalog and merges it with the
// fallback dataset. A failed fetch substitutes the fallback entirely; the
// second return reports whether that happened.
func loadMergedCatalog(ctx context.Context, provider repository.CatalogProvider, fallback []entity.Product) ([]entity.Product, bool) {
	raws, err := provider.FetchCatalog(ctx)
	if err != nil {
		logger.Warn("catalog fetch failed, using fallback dataset: %v", err)
		return mergeCatalogs(nil, fallback), true
	}

	remote := make([]entity.Product, 0, len(raws))
	for _, raw := range raws {
		remote = append(remote, mapRawProduct(raw))
	}

	return mergeCatalogs(remote, fallback), false
}

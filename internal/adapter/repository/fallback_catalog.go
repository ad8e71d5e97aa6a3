package repository

import (
	"lokapasar/internal/domain/entity"
)

func ratingOf(v float64) *float64 { return &v }

// FallbackCatalog is the fixed local dataset substituted when the remote
// catalog provider is unreachable. Identities are stable so the merge
// resolver can reconcile them against remote records.
func FallbackCatalog() []entity.Product {
	return []entity.Product{
		{
			ID:           "fb-1",
			Name:         "Wireless Earbuds Pro",
			Price:        45,
			Images:       []string{"https://cdn.lokapasar.dev/img/fb-1-a.jpg", "https://cdn.lokapasar.dev/img/fb-1-b.jpg"},
			Rating:       ratingOf(4.6),
			Brand:        "Soundline",
			Category:     "electronics",
			Condition:    entity.ConditionNew,
			FreeShipping: true,
			Variants: []entity.ProductVariant{
				{Type: "color", Options: []string{"black", "white"}},
			},
			Shop: &entity.ShopRef{ID: "shop-9", Name: "Soundline Official"},
		},
		{
			ID:        "fb-2",
			Name:      "Mechanical Keyboard TKL",
			Price:     80,
			Images:    []string{"https://cdn.lokapasar.dev/img/fb-2-a.jpg"},
			Rating:    ratingOf(4.8),
			Brand:     "Keylab",
			Category:  "electronics",
			Condition: entity.ConditionNew,
			Featured:  true,
			Variants: []entity.ProductVariant{
				{Type: "switch", Options: []string{"red", "brown", "blue"}},
			},
		},
		{
			ID:        "fb-3",
			Name:      "Trail Running Shoes",
			Price:     119,
			Images:    []string{"https://cdn.lokapasar.dev/img/fb-3-a.jpg"},
			Rating:    ratingOf(4.2),
			Brand:     "Langkah",
			Category:  "sports",
			Condition: entity.ConditionNew,
			Variants: []entity.ProductVariant{
				{Type: "size", Options: []string{"40", "41", "42", "43"}},
			},
			Shop: &entity.ShopRef{ID: "shop-3", Name: "Langkah Sport"},
		},
		{
			ID:           "fb-4",
			Name:         "Smartwatch Active 2",
			Price:        450,
			Images:       []string{"https://cdn.lokapasar.dev/img/fb-4-a.jpg"},
			Rating:       ratingOf(4.4),
			Brand:        "Soundline",
			Category:     "electronics",
			Condition:    entity.ConditionNew,
			FreeShipping: true,
		},
		{
			ID:        "fb-5",
			Name:      "Vintage Film Camera",
			Price:     799,
			Images:    []string{},
			Brand:     "Optik",
			Category:  "hobbies",
			Condition: entity.ConditionUsed,
			Shop:      &entity.ShopRef{ID: "shop-17", Name: "Optik Antik"},
		},
		{
			ID:        "fb-6",
			Name:      "Carbon Road Bike Frame",
			Price:     1599,
			Images:    []string{"https://cdn.lokapasar.dev/img/fb-6-a.jpg"},
			Category:  "sports",
			Condition: entity.ConditionUsed,
		},
	}
}

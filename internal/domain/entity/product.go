package entity

const (
	ConditionNew  = "new"
	ConditionUsed = "used"
)

type ProductVariant struct {
	Type    string   `json:"type"`
	Options []string `json:"options"`
}

// ShopRef is a weak reference to the storefront that listed the product.
type ShopRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Product struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Price        float64          `json:"price"`
	Images       []string         `json:"images"`
	Rating       *float64         `json:"rating,omitempty"` // nil means unrated, not zero
	Brand        string           `json:"brand,omitempty"`
	Category     string           `json:"category,omitempty"`
	Condition    string           `json:"condition"` // "new" or "used"
	FreeShipping bool             `json:"free_shipping"`
	Featured     bool             `json:"featured"`
	Variants     []ProductVariant `json:"variants,omitempty"`
	Shop         *ShopRef         `json:"shop,omitempty"`
}

// RawProduct is the record shape returned by the remote catalog provider.
// Every field may be missing; mapping into Product happens in the catalog
// use case and must never fail.
type RawProduct struct {
	ID           string           `json:"id,omitempty"`
	ProductID    string           `json:"productId,omitempty"`
	SKU          string           `json:"sku,omitempty"`
	Name         string           `json:"name"`
	Price        interface{}      `json:"price"` // string or number, provider is inconsistent
	Images       []string         `json:"images,omitempty"`
	Status       string           `json:"status,omitempty"` // "used" marks second-hand, anything else is new
	Brand        string           `json:"brand,omitempty"`
	Category     string           `json:"category,omitempty"`
	Rating       *float64         `json:"rating,omitempty"`
	FreeShipping *bool            `json:"free_shipping,omitempty"`
	Featured     *bool            `json:"featured,omitempty"`
	Variants     []ProductVariant `json:"variants,omitempty"`
	Shop         *ShopRef         `json:"shop,omitempty"`
}

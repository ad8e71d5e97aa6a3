package entity

import (
	"time"
)

// Review is buyer feedback attached to exactly one product.
type Review struct {
	ID         string    `json:"id"`
	ProductID  string    `json:"product_id"`
	AuthorID   string    `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Rating     int       `json:"rating"` // 1-5
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

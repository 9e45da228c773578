package models

import (
	"time"

	"github.com/lib/pq"
)

// CartLine associates a user with a product in the cart. Presence implies
// quantity 1; the composite unique index is the only duplicate guard.
type CartLine struct {
	CartID    uint      `gorm:"primaryKey;autoIncrement" json:"cart_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_cart_user_prod" json:"user_id"`
	ProdID    uint      `gorm:"not null;uniqueIndex:idx_cart_user_prod" json:"prod_id"`
	CreatedAt time.Time `json:"created_at"`
}

// CartItemView is a cart line joined with its product fields, shaped the
// way the storefront consumes it.
type CartItemView struct {
	ProdID   uint     `json:"prod_id"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Discount float64  `json:"discount"`
	Metal    string   `json:"metal"`
	KrtPurt  int      `json:"krt_purt"`
	Images   pq.StringArray `gorm:"type:text[]" json:"images"`
}

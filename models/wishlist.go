package models

import (
	"time"

	"github.com/lib/pq"
)

type WishlistLine struct {
	ID      uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID  uint      `gorm:"not null;uniqueIndex:idx_wishlist_user_prod" json:"user_id"`
	ProdID  uint      `gorm:"not null;uniqueIndex:idx_wishlist_user_prod" json:"prod_id"`
	AddedAt time.Time `gorm:"autoCreateTime" json:"added_at"`
}

// WishlistItemView is a wishlist line joined with its product fields.
type WishlistItemView struct {
	ID      uint           `json:"id"`
	UserID  uint           `json:"user_id"`
	ProdID  uint           `json:"prod_id"`
	AddedAt time.Time      `json:"added_at"`
	Name    string         `json:"name"`
	Price   float64        `json:"price"`
	Descrp  string         `json:"descrp"`
	Images  pq.StringArray `gorm:"type:text[]" json:"images"`
}

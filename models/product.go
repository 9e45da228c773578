package models

import (
	"time"

	"github.com/lib/pq"
)

type Product struct {
	ProdID    uint           `gorm:"primaryKey;autoIncrement" json:"prod_id"`
	Name      string         `gorm:"not null" json:"name"`
	Price     float64        `gorm:"not null;check:price >= 0" json:"price"`
	Descrp    string         `json:"descrp"`
	Metal     string         `json:"metal"`
	KrtPurt   int            `json:"krt_purt"` // karat purity, e.g. 18, 22, 24
	Category  string         `gorm:"index" json:"category"`
	Gender    string         `json:"gender"`
	Images    pq.StringArray `gorm:"type:text[]" json:"images"`
	Weight    float64        `json:"weight"`
	Discount  float64        `gorm:"check:discount >= 0 AND discount <= 100" json:"discount"`
	CreatedAt time.Time      `json:"created_at"`
}

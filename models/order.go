package models

import (
	"time"

	"github.com/lib/pq"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

// IsTerminal reports whether no further status change is allowed through
// the user-facing cancel path.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

type Order struct {
	OrderID         uint          `gorm:"primaryKey;autoIncrement" json:"order_id"`
	UserID          uint          `gorm:"not null;index" json:"user_id"`
	OrderAmt        float64       `json:"order_amt"`
	OrderStatus     OrderStatus   `gorm:"type:VARCHAR(20);default:'Pending'" json:"order_status"`
	PaymentMethod   string        `json:"payment_method"`
	PaymentID       string        `json:"payment_id"`
	RazorpayOrderID string        `json:"razorpay_order_id"`
	ProductIDs      pq.Int64Array `gorm:"type:integer[]" json:"product_ids"`
	OrderDate       time.Time     `gorm:"autoCreateTime" json:"order_date"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// OrderWithBuyer is an order joined with the buyer's contact details,
// used by the admin order views.
type OrderWithBuyer struct {
	Order
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
	ContactNo string `json:"contact_no"`
}

package order

import (
	"time"

	"ecowear-be/internal/product"
)

type Order struct {
	ID          string  `json:"id"`
	BuyerID     int     `json:"buyer_id"`
	TotalAmount float64 `json:"total_amount"`
	// CarbonOffset is always true at creation; the column stays queryable
	// in case the flag ever becomes a checkout choice.
	CarbonOffset bool        `json:"carbon_offset"`
	Items        []OrderItem `json:"items"`
	CreatedAt    time.Time   `json:"created_at"`
}

type OrderItem struct {
	ID        int64  `json:"id"`
	OrderID   string `json:"order_id"`
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	// Product is resolved when listing a buyer's orders; nil on create.
	Product *product.Product `json:"product,omitempty"`
}

type NewOrderItem struct {
	ProductID string
	Quantity  int
}

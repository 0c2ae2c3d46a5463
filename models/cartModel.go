package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem is a line item in the single shared cart. The unique index on
// product_id keeps concurrent adds from producing a second row for the
// same product. Rows are hard-deleted so the index slot is freed on remove.
type CartItem struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ProductId uint      `json:"productId" gorm:"uniqueIndex"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"createdAt"`
}

// CartItemDetails is a cart row joined with its product, plus the computed
// subtotal (price x quantity).
type CartItemDetails struct {
	ID          uint            `json:"id"`
	ProductId   uint            `json:"productId"`
	ProductName string          `json:"productName"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

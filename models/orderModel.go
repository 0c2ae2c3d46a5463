package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type ReceiptItem struct {
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// Receipt is returned by checkout and never persisted; there is no order
// history in this demo.
type Receipt struct {
	OrderId       string          `json:"orderId"`
	CustomerName  string          `json:"customerName"`
	CustomerEmail string          `json:"customerEmail"`
	Items         []ReceiptItem   `json:"items"`
	Total         decimal.Decimal `json:"total"`
	Timestamp     time.Time       `json:"timestamp"`
}

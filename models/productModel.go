package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type Product struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2)"`
	Description string          `json:"description"`
	ImageUrl    string          `json:"imageUrl"`
	Specs       datatypes.JSON  `json:"specs"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

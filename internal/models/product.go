package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product mirrors a row in the products table.
type Product struct {
	ProductID   string
	UserID      string
	Name        string
	Description string
	Price       decimal.Decimal
	Images      []string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry owned by a single user. Deletion is soft:
// IsActive is cleared and the row stays in storage.
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

// ProductStats summarises a user's catalog.
type ProductStats struct {
	TotalProducts    int64
	ActiveProducts   int64
	InactiveProducts int64
}

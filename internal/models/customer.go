package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer accumulates loyalty data across sales recorded under its name.
type Customer struct {
	ID            int             `json:"id"`
	Name          string          `json:"name"`
	Email         string          `json:"email,omitempty"`
	Phone         string          `json:"phone,omitempty"`
	TotalOrders   int             `json:"total_orders"`
	TotalSpent    decimal.Decimal `json:"total_spent"`
	LoyaltyPoints int             `json:"loyalty_points"`
	CreatedAt     time.Time       `json:"created_at"`
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItem is one line of a recorded sale.
type SaleItem struct {
	ProductID int             `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// Sale is a completed point-of-sale transaction. CustomerName is empty
// for walk-in customers.
type Sale struct {
	ID            int             `json:"id"`
	Items         []SaleItem      `json:"items"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PaymentMethod string          `json:"payment_method"`
	CustomerName  string          `json:"customer_name,omitempty"`
	EmployeeID    int             `json:"employee_id,omitempty"`
	OrderType     string          `json:"order_type"` // dine_in, takeout, catering
	Timestamp     time.Time       `json:"timestamp"`
}

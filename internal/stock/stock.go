// Package stock derives stock status from quantity and reorder threshold.
package stock

import "fmt"

// Status is the derived stock level of an inventory item.
type Status string

const (
	InStock    Status = "in_stock"
	LowStock   Status = "low_stock"
	OutOfStock Status = "out_of_stock"
)

// NeedsRestock reports whether the status should appear on the low-stock
// alert list. Both low and empty stock qualify.
func (s Status) NeedsRestock() bool {
	return s == LowStock || s == OutOfStock
}

// Classify returns the status for a quantity against its reorder
// threshold. Negative input is a caller bug, not a data condition, so it
// panics instead of guessing a classification.
func Classify(quantity, minThreshold int) Status {
	if quantity < 0 || minThreshold < 0 {
		panic(fmt.Sprintf("stock: negative input (quantity=%d, minThreshold=%d)", quantity, minThreshold))
	}
	switch {
	case quantity == 0:
		return OutOfStock
	case quantity <= minThreshold:
		return LowStock
	default:
		return InStock
	}
}

// Package report computes the dashboard views from snapshots of the base
// records. Everything here is a pure function: same snapshot in, same
// view out, no I/O and no retained state.
package report

import (
	"github.com/marqedonuts/backoffice/internal/models"
	"github.com/marqedonuts/backoffice/internal/stock"
)

// UnknownProductName is shown when an inventory row references a product
// that no longer exists. The row itself is never dropped.
const UnknownProductName = "Unknown Product"

// Alert is one entry on the restock attention list.
type Alert struct {
	ProductName     string       `json:"product_name"`
	ProductID       int          `json:"product_id"`
	CurrentQuantity int          `json:"current_quantity"`
	MinThreshold    int          `json:"min_threshold"`
	Status          stock.Status `json:"status"`
}

// LowStockAlerts returns one Alert per inventory item classified low or
// out of stock, in the order the items were given.
func LowStockAlerts(items []models.InventoryItem, productsByID map[int]models.Product) []Alert {
	alerts := []Alert{}
	for _, item := range items {
		status := stock.Classify(item.Quantity, item.MinThreshold)
		if !status.NeedsRestock() {
			continue
		}
		name := UnknownProductName
		if p, ok := productsByID[item.ProductID]; ok {
			name = p.Name
		}
		alerts = append(alerts, Alert{
			ProductName:     name,
			ProductID:       item.ProductID,
			CurrentQuantity: item.Quantity,
			MinThreshold:    item.MinThreshold,
			Status:          status,
		})
	}
	return alerts
}

// ProductsByID builds the lookup the alert and inventory joins resolve
// product names through.
func ProductsByID(products []models.Product) map[int]models.Product {
	byID := make(map[int]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return byID
}

package models

import "time"

// InventoryItem tracks current stock for one product. Stock status is
// never stored on the item; it is derived from Quantity and MinThreshold
// at read time so counts and alerts can never go stale.
type InventoryItem struct {
	ID            int       `json:"id"`
	ProductID     int       `json:"product_id"`
	Quantity      int       `json:"quantity"`
	MinThreshold  int       `json:"min_threshold"`
	MaxCapacity   int       `json:"max_capacity"`
	LastRestocked time.Time `json:"last_restocked"`
}

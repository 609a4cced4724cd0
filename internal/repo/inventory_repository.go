package repo

import "github.com/marqedonuts/backoffice/internal/models"

// InventoryRepository defines the interface for inventory data
// operations. Stock status is never persisted; callers derive it.
type InventoryRepository interface {
	Create(item models.InventoryItem) (models.InventoryItem, error)
	GetAll() ([]models.InventoryItem, error)
	GetByProductID(productID int) (models.InventoryItem, error)
	Update(item models.InventoryItem) (models.InventoryItem, error)
	DeleteByProductID(productID int) error
}

package repo

import "github.com/marqedonuts/backoffice/internal/models"

// InMemoryInventoryRepository is an in-memory implementation of
// InventoryRepository.
type InMemoryInventoryRepository struct {
	items  []models.InventoryItem
	nextID int
}

func NewInMemoryInventoryRepository() *InMemoryInventoryRepository {
	return &InMemoryInventoryRepository{
		items:  []models.InventoryItem{},
		nextID: 1,
	}
}

func (r *InMemoryInventoryRepository) Create(item models.InventoryItem) (models.InventoryItem, error) {
	item.ID = r.nextID
	r.nextID++
	r.items = append(r.items, item)
	return item, nil
}

// GetAll retrieves all inventory items in insertion order.
func (r *InMemoryInventoryRepository) GetAll() ([]models.InventoryItem, error) {
	return r.items, nil
}

func (r *InMemoryInventoryRepository) GetByProductID(productID int) (models.InventoryItem, error) {
	for _, item := range r.items {
		if item.ProductID == productID {
			return item, nil
		}
	}
	return models.InventoryItem{}, ErrInventoryItemNotFound
}

func (r *InMemoryInventoryRepository) Update(item models.InventoryItem) (models.InventoryItem, error) {
	for i, existing := range r.items {
		if existing.ID == item.ID {
			r.items[i] = item
			return item, nil
		}
	}
	return models.InventoryItem{}, ErrInventoryItemNotFound
}

func (r *InMemoryInventoryRepository) DeleteByProductID(productID int) error {
	for i, item := range r.items {
		if item.ProductID == productID {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return ErrInventoryItemNotFound
}

func (r *InMemoryInventoryRepository) Clear() {
	r.items = []models.InventoryItem{}
	r.nextID = 1
}

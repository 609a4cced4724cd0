package repo

import "github.com/marqedonuts/backoffice/internal/models"

// ProductFilter narrows the product search endpoint. Nil/zero fields are
// ignored.
type ProductFilter struct {
	Name      string
	Category  models.Category
	Available *bool
	Offset    *int
	Limit     *int
}

// ProductRepository defines the interface for product data operations.
type ProductRepository interface {
	Create(product models.Product) (models.Product, error)
	GetAll() ([]models.Product, error)
	GetByID(id int) (models.Product, error)
	Update(product models.Product) (models.Product, error)
	Delete(id int) error
	Filter(pf ProductFilter) ([]models.Product, int, error)
}

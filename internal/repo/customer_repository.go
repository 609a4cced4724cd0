package repo

import "github.com/marqedonuts/backoffice/internal/models"

// CustomerRepository defines the interface for customer loyalty records.
type CustomerRepository interface {
	Create(customer models.Customer) (models.Customer, error)
	GetAll() ([]models.Customer, error)
	GetByName(name string) (models.Customer, error)
	Update(customer models.Customer) (models.Customer, error)
}

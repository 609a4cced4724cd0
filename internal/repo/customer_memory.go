package repo

import "github.com/marqedonuts/backoffice/internal/models"

// InMemoryCustomerRepository is an in-memory implementation of
// CustomerRepository.
type InMemoryCustomerRepository struct {
	customers []models.Customer
	nextID    int
}

func NewInMemoryCustomerRepository() *InMemoryCustomerRepository {
	return &InMemoryCustomerRepository{
		customers: []models.Customer{},
		nextID:    1,
	}
}

func (r *InMemoryCustomerRepository) Create(customer models.Customer) (models.Customer, error) {
	customer.ID = r.nextID
	r.nextID++
	r.customers = append(r.customers, customer)
	return customer, nil
}

func (r *InMemoryCustomerRepository) GetAll() ([]models.Customer, error) {
	return r.customers, nil
}

func (r *InMemoryCustomerRepository) GetByName(name string) (models.Customer, error) {
	for _, c := range r.customers {
		if c.Name == name {
			return c, nil
		}
	}
	return models.Customer{}, ErrCustomerNotFound
}

func (r *InMemoryCustomerRepository) Update(customer models.Customer) (models.Customer, error) {
	for i, c := range r.customers {
		if c.ID == customer.ID {
			r.customers[i] = customer
			return customer, nil
		}
	}
	return models.Customer{}, ErrCustomerNotFound
}

func (r *InMemoryCustomerRepository) Clear() {
	r.customers = []models.Customer{}
	r.nextID = 1
}

package repo

import "github.com/marqedonuts/backoffice/internal/models"

// InMemoryEmployeeRepository is an in-memory implementation of
// EmployeeRepository.
type InMemoryEmployeeRepository struct {
	employees []models.Employee
	nextID    int
}

func NewInMemoryEmployeeRepository() *InMemoryEmployeeRepository {
	return &InMemoryEmployeeRepository{
		employees: []models.Employee{},
		nextID:    1,
	}
}

func (r *InMemoryEmployeeRepository) Create(employee models.Employee) (models.Employee, error) {
	employee.ID = r.nextID
	r.nextID++
	r.employees = append(r.employees, employee)
	return employee, nil
}

func (r *InMemoryEmployeeRepository) GetAll() ([]models.Employee, error) {
	return r.employees, nil
}

func (r *InMemoryEmployeeRepository) Clear() {
	r.employees = []models.Employee{}
	r.nextID = 1
}

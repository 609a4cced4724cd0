package repo

import "github.com/marqedonuts/backoffice/internal/models"

// EmployeeRepository defines the interface for employee records.
type EmployeeRepository interface {
	Create(employee models.Employee) (models.Employee, error)
	GetAll() ([]models.Employee, error)
}

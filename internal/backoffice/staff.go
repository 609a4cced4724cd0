package backoffice

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/marqedonuts/backoffice/internal/models"
)

// EmployeeDraft is an unvalidated new-employee payload.
type EmployeeDraft struct {
	Name       string `json:"name"`
	Role       string `json:"role"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	HourlyWage string `json:"hourly_wage"`
}

var validRoles = map[models.EmployeeRole]bool{
	models.RoleManager:  true,
	models.RoleCashier:  true,
	models.RoleBaker:    true,
	models.RolePrepCook: true,
}

// defaultHourlyWage applies when the draft leaves the wage blank.
var defaultHourlyWage = decimal.NewFromInt(15)

// AddEmployee validates and persists a new employee record.
func (s *Service) AddEmployee(draft EmployeeDraft) (models.Employee, error) {
	errs := []FieldError{}

	name := strings.TrimSpace(draft.Name)
	if name == "" {
		errs = append(errs, FieldError{Field: "name", Description: "name is required"})
	}
	role := models.EmployeeRole(strings.TrimSpace(draft.Role))
	if !validRoles[role] {
		errs = append(errs, FieldError{Field: "role", Description: "role must be manager, cashier, baker or prep_cook"})
	}

	wage := defaultHourlyWage
	if trimmed := strings.TrimSpace(draft.HourlyWage); trimmed != "" {
		parsed, err := decimal.NewFromString(trimmed)
		if err != nil || parsed.IsNegative() {
			errs = append(errs, FieldError{Field: "hourly_wage", Description: "hourly_wage must be a non-negative number"})
		} else {
			wage = parsed
		}
	}

	if len(errs) > 0 {
		return models.Employee{}, &ValidationError{Fields: errs}
	}

	return s.employees.Create(models.Employee{
		Name:       name,
		Role:       role,
		Email:      strings.TrimSpace(draft.Email),
		Phone:      strings.TrimSpace(draft.Phone),
		HourlyWage: wage,
		HireDate:   time.Now().UTC(),
		IsActive:   true,
	})
}

// ListActiveEmployees returns employees still on the roster.
func (s *Service) ListActiveEmployees() ([]models.Employee, error) {
	employees, err := s.employees.GetAll()
	if err != nil {
		return nil, err
	}
	active := []models.Employee{}
	for _, e := range employees {
		if e.IsActive {
			active = append(active, e)
		}
	}
	return active, nil
}

// CustomerDraft is an unvalidated new-customer payload.
type CustomerDraft struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// AddCustomer validates and persists a new loyalty customer.
func (s *Service) AddCustomer(draft CustomerDraft) (models.Customer, error) {
	name := strings.TrimSpace(draft.Name)
	if name == "" {
		return models.Customer{}, &ValidationError{Fields: []FieldError{
			{Field: "name", Description: "name is required"},
		}}
	}
	return s.customers.Create(models.Customer{
		Name:      name,
		Email:     strings.TrimSpace(draft.Email),
		Phone:     strings.TrimSpace(draft.Phone),
		CreatedAt: time.Now().UTC(),
	})
}

// ListCustomersBySpend returns all customers, biggest spenders first.
func (s *Service) ListCustomersBySpend() ([]models.Customer, error) {
	customers, err := s.customers.GetAll()
	if err != nil {
		return nil, err
	}
	sorted := make([]models.Customer, len(customers))
	copy(sorted, customers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TotalSpent.GreaterThan(sorted[j].TotalSpent)
	})
	return sorted, nil
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type EmployeeRole string

const (
	RoleManager  EmployeeRole = "manager"
	RoleCashier  EmployeeRole = "cashier"
	RoleBaker    EmployeeRole = "baker"
	RolePrepCook EmployeeRole = "prep_cook"
)

type Employee struct {
	ID         int             `json:"id"`
	Name       string          `json:"name"`
	Role       EmployeeRole    `json:"role"`
	Email      string          `json:"email,omitempty"`
	Phone      string          `json:"phone,omitempty"`
	HourlyWage decimal.Decimal `json:"hourly_wage"`
	HireDate   time.Time       `json:"hire_date"`
	IsActive   bool            `json:"is_active"`
}

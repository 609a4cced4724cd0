package repo

import (
	"context"
	"database/sql"
	"time"

	"github.com/marqedonuts/backoffice/internal/models"
)

type PostgresEmployeeRepository struct {
	db *sql.DB
}

func NewPostgresEmployeeRepository(db *sql.DB) *PostgresEmployeeRepository {
	return &PostgresEmployeeRepository{db: db}
}

func (r *PostgresEmployeeRepository) Create(e models.Employee) (models.Employee, error) {
	query := `INSERT INTO employees (name, role, email, phone, hourly_wage, hire_date, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query, e.Name, string(e.Role), e.Email, e.Phone,
		e.HourlyWage, e.HireDate, e.IsActive).Scan(&e.ID)
	return e, err
}

func (r *PostgresEmployeeRepository) GetAll() ([]models.Employee, error) {
	query := `SELECT id, name, role, email, phone, hourly_wage, hire_date, is_active FROM employees ORDER BY id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []models.Employee
	for rows.Next() {
		var e models.Employee
		var role string
		if err := rows.Scan(&e.ID, &e.Name, &role, &e.Email, &e.Phone,
			&e.HourlyWage, &e.HireDate, &e.IsActive); err != nil {
			return nil, err
		}
		e.Role = models.EmployeeRole(role)
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

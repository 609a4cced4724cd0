package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/marqedonuts/backoffice/internal/models"
)

type PostgresSaleRepository struct {
	db *sql.DB
}

func NewPostgresSaleRepository(db *sql.DB) *PostgresSaleRepository {
	return &PostgresSaleRepository{db: db}
}

const saleColumns = `id, items, total_amount, payment_method, customer_name, employee_id, order_type, timestamp`

func scanSale(row interface{ Scan(...any) error }) (models.Sale, error) {
	var s models.Sale
	var items []byte
	err := row.Scan(&s.ID, &items, &s.TotalAmount, &s.PaymentMethod,
		&s.CustomerName, &s.EmployeeID, &s.OrderType, &s.Timestamp)
	if err != nil {
		return models.Sale{}, err
	}
	if len(items) > 0 {
		if err := json.Unmarshal(items, &s.Items); err != nil {
			return models.Sale{}, fmt.Errorf("decode sale items: %w", err)
		}
	}
	if s.Items == nil {
		s.Items = []models.SaleItem{}
	}
	return s, nil
}

func (r *PostgresSaleRepository) Create(s models.Sale) (models.Sale, error) {
	items, err := json.Marshal(s.Items)
	if err != nil {
		return models.Sale{}, fmt.Errorf("encode sale items: %w", err)
	}

	query := `INSERT INTO sales (items, total_amount, payment_method, customer_name, employee_id, order_type, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = r.db.QueryRowContext(ctx, query, items, s.TotalAmount, s.PaymentMethod,
		s.CustomerName, s.EmployeeID, s.OrderType, s.Timestamp).Scan(&s.ID)
	return s, err
}

func (r *PostgresSaleRepository) GetRecent(limit int) ([]models.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales ORDER BY timestamp DESC LIMIT $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	return r.querySales(ctx, query, limit)
}

func (r *PostgresSaleRepository) GetBetween(start, end time.Time) ([]models.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE timestamp >= $1 AND timestamp < $2 ORDER BY timestamp`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	return r.querySales(ctx, query, start, end)
}

func (r *PostgresSaleRepository) querySales(ctx context.Context, query string, args ...any) ([]models.Sale, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sales []models.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, err
		}
		sales = append(sales, s)
	}
	return sales, rows.Err()
}

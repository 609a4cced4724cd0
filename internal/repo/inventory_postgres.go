package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/marqedonuts/backoffice/internal/models"
)

type PostgresInventoryRepository struct {
	db *sql.DB
}

func NewPostgresInventoryRepository(db *sql.DB) *PostgresInventoryRepository {
	return &PostgresInventoryRepository{db: db}
}

const inventoryColumns = `id, product_id, quantity, min_threshold, max_capacity, last_restocked`

func (r *PostgresInventoryRepository) Create(item models.InventoryItem) (models.InventoryItem, error) {
	query := `INSERT INTO inventory (product_id, quantity, min_threshold, max_capacity, last_restocked)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query, item.ProductID, item.Quantity,
		item.MinThreshold, item.MaxCapacity, item.LastRestocked).Scan(&item.ID)
	return item, err
}

func (r *PostgresInventoryRepository) GetAll() ([]models.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory ORDER BY id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.InventoryItem
	for rows.Next() {
		var item models.InventoryItem
		if err := rows.Scan(&item.ID, &item.ProductID, &item.Quantity,
			&item.MinThreshold, &item.MaxCapacity, &item.LastRestocked); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresInventoryRepository) GetByProductID(productID int) (models.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory WHERE product_id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var item models.InventoryItem
	err := r.db.QueryRowContext(ctx, query, productID).Scan(&item.ID, &item.ProductID,
		&item.Quantity, &item.MinThreshold, &item.MaxCapacity, &item.LastRestocked)
	if errors.Is(err, sql.ErrNoRows) {
		return models.InventoryItem{}, ErrInventoryItemNotFound
	}
	return item, err
}

func (r *PostgresInventoryRepository) Update(item models.InventoryItem) (models.InventoryItem, error) {
	query := `UPDATE inventory SET quantity = $1, min_threshold = $2, max_capacity = $3, last_restocked = $4
		WHERE id = $5`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, item.Quantity, item.MinThreshold,
		item.MaxCapacity, item.LastRestocked, item.ID)
	if err != nil {
		return models.InventoryItem{}, err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.InventoryItem{}, ErrInventoryItemNotFound
	}
	return item, nil
}

func (r *PostgresInventoryRepository) DeleteByProductID(productID int) error {
	query := `DELETE FROM inventory WHERE product_id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, productID)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrInventoryItemNotFound
	}
	return nil
}

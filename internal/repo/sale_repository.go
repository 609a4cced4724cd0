package repo

import (
	"time"

	"github.com/marqedonuts/backoffice/internal/models"
)

// SaleRepository defines the interface for recorded sale transactions.
type SaleRepository interface {
	Create(sale models.Sale) (models.Sale, error)
	// GetRecent returns up to limit sales, newest first.
	GetRecent(limit int) ([]models.Sale, error)
	// GetBetween returns sales with start <= timestamp < end, oldest first.
	GetBetween(start, end time.Time) ([]models.Sale, error)
}

package repo

import (
	"time"

	"github.com/marqedonuts/backoffice/internal/models"
)

// InMemorySaleRepository is an in-memory implementation of SaleRepository.
type InMemorySaleRepository struct {
	sales  []models.Sale
	nextID int
}

func NewInMemorySaleRepository() *InMemorySaleRepository {
	return &InMemorySaleRepository{
		sales:  []models.Sale{},
		nextID: 1,
	}
}

func (r *InMemorySaleRepository) Create(sale models.Sale) (models.Sale, error) {
	sale.ID = r.nextID
	r.nextID++
	r.sales = append(r.sales, sale)
	return sale, nil
}

func (r *InMemorySaleRepository) GetRecent(limit int) ([]models.Sale, error) {
	recent := []models.Sale{}
	for i := len(r.sales) - 1; i >= 0 && len(recent) < limit; i-- {
		recent = append(recent, r.sales[i])
	}
	return recent, nil
}

func (r *InMemorySaleRepository) GetBetween(start, end time.Time) ([]models.Sale, error) {
	matched := []models.Sale{}
	for _, s := range r.sales {
		if !s.Timestamp.Before(start) && s.Timestamp.Before(end) {
			matched = append(matched, s)
		}
	}
	return matched, nil
}

func (r *InMemorySaleRepository) Clear() {
	r.sales = []models.Sale{}
	r.nextID = 1
}

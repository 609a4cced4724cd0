package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/marqedonuts/backoffice/internal/models"
)

// PopularItem is a product ranked by units sold today.
type PopularItem struct {
	Name         string          `json:"name"`
	QuantitySold int             `json:"quantity_sold"`
	Category     models.Category `json:"category"`
}

// DailySales summarizes the current day's transactions.
type DailySales struct {
	Date              time.Time
	TotalRevenue      decimal.Decimal
	TotalOrders       int
	AverageOrderValue decimal.Decimal
	PopularItems      []PopularItem
}

// CategoryStats aggregates today's line items for one category.
type CategoryStats struct {
	Revenue  decimal.Decimal `json:"revenue"`
	Quantity int             `json:"quantity"`
	Orders   int             `json:"orders"`
}

// Daily computes the day's sales summary with the top five products by
// units sold. Line items for deleted products are counted in the totals
// but cannot be ranked by name, so they are skipped in the popular list.
func Daily(sales []models.Sale, productsByID map[int]models.Product, dayStart, dayEnd time.Time) DailySales {
	d := DailySales{Date: dayStart}

	unitsSold := map[int]int{}
	for _, sale := range sales {
		if !inDay(sale.Timestamp, dayStart, dayEnd) {
			continue
		}
		d.TotalRevenue = d.TotalRevenue.Add(sale.TotalAmount)
		d.TotalOrders++
		for _, line := range sale.Items {
			unitsSold[line.ProductID] += line.Quantity
		}
	}
	if d.TotalOrders > 0 {
		d.AverageOrderValue = d.TotalRevenue.Div(decimal.NewFromInt(int64(d.TotalOrders)))
	}

	type ranked struct {
		productID int
		units     int
	}
	ranking := make([]ranked, 0, len(unitsSold))
	for id, units := range unitsSold {
		ranking = append(ranking, ranked{id, units})
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		if ranking[i].units != ranking[j].units {
			return ranking[i].units > ranking[j].units
		}
		return ranking[i].productID < ranking[j].productID
	})

	d.PopularItems = []PopularItem{}
	for _, r := range ranking {
		if len(d.PopularItems) == 5 {
			break
		}
		p, ok := productsByID[r.productID]
		if !ok {
			continue
		}
		d.PopularItems = append(d.PopularItems, PopularItem{
			Name:         p.Name,
			QuantitySold: r.units,
			Category:     p.Category,
		})
	}
	return d
}

// ByCategory breaks today's line items down per product category.
// Lines referencing deleted products have no category and are skipped.
func ByCategory(sales []models.Sale, productsByID map[int]models.Product, dayStart, dayEnd time.Time) map[models.Category]CategoryStats {
	stats := map[models.Category]CategoryStats{}
	for _, sale := range sales {
		if !inDay(sale.Timestamp, dayStart, dayEnd) {
			continue
		}
		for _, line := range sale.Items {
			p, ok := productsByID[line.ProductID]
			if !ok {
				continue
			}
			cs := stats[p.Category]
			cs.Revenue = cs.Revenue.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
			cs.Quantity += line.Quantity
			cs.Orders++
			stats[p.Category] = cs
		}
	}
	return stats
}

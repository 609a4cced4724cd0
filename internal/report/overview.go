package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/marqedonuts/backoffice/internal/models"
)

// Summary is the dashboard headline block. Monetary fields carry full
// precision; rounding to cents happens in the HTTP layer.
type Summary struct {
	TodayRevenue      decimal.Decimal
	TodayOrders       int
	LowStockAlerts    int
	TotalProducts     int
	TotalCustomers    int
	ActiveEmployees   int
	AverageOrderValue decimal.Decimal
}

// Snapshot is the full set of records the overview is computed from.
type Snapshot struct {
	Products  []models.Product
	Inventory []models.InventoryItem
	Sales     []models.Sale
	Customers []models.Customer
	Employees []models.Employee
}

// Overview computes the dashboard summary for sales falling in
// [dayStart, dayEnd). It is recomputed from scratch on every call.
func Overview(snap Snapshot, dayStart, dayEnd time.Time) Summary {
	s := Summary{
		TotalProducts:  len(snap.Products),
		TotalCustomers: len(snap.Customers),
		LowStockAlerts: len(LowStockAlerts(snap.Inventory, ProductsByID(snap.Products))),
	}

	for _, sale := range snap.Sales {
		if !inDay(sale.Timestamp, dayStart, dayEnd) {
			continue
		}
		s.TodayRevenue = s.TodayRevenue.Add(sale.TotalAmount)
		s.TodayOrders++
	}
	if s.TodayOrders > 0 {
		s.AverageOrderValue = s.TodayRevenue.Div(decimal.NewFromInt(int64(s.TodayOrders)))
	}

	for _, e := range snap.Employees {
		if e.IsActive {
			s.ActiveEmployees++
		}
	}
	return s
}

func inDay(ts, dayStart, dayEnd time.Time) bool {
	return !ts.Before(dayStart) && ts.Before(dayEnd)
}

// DayBounds returns the start and end of the calendar day containing now,
// evaluated in loc. The shop reports its day in one fixed reference zone
// no matter where a request comes from.
func DayBounds(now time.Time, loc *time.Location) (time.Time, time.Time) {
	local := now.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}

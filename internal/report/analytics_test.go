package report

import (
	"testing"
	"time"

	"github.com/marqedonuts/backoffice/internal/models"
)

func TestDailyRanksTopFiveByUnits(t *testing.T) {
	dayStart := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)

	products := []models.Product{
		{ID: 1, Name: "Glazed Donut", Category: models.CategoryDonuts},
		{ID: 2, Name: "Chocolate Donut", Category: models.CategoryDonuts},
		{ID: 3, Name: "Bacon Kolache", Category: models.CategoryKolaches},
		{ID: 4, Name: "Breakfast Taco", Category: models.CategoryTacos},
		{ID: 5, Name: "Croissant", Category: models.CategoryCroissants},
		{ID: 6, Name: "Drip Coffee", Category: models.CategoryCoffee},
	}

	sales := []models.Sale{
		{
			TotalAmount: mustDecimal(t, "50"),
			Timestamp:   dayStart.Add(8 * time.Hour),
			Items: []models.SaleItem{
				{ProductID: 1, Quantity: 12, Price: mustDecimal(t, "1.5")},
				{ProductID: 2, Quantity: 6, Price: mustDecimal(t, "1.75")},
				{ProductID: 3, Quantity: 5, Price: mustDecimal(t, "2.5")},
			},
		},
		{
			TotalAmount: mustDecimal(t, "30"),
			Timestamp:   dayStart.Add(10 * time.Hour),
			Items: []models.SaleItem{
				{ProductID: 4, Quantity: 4, Price: mustDecimal(t, "3")},
				{ProductID: 5, Quantity: 3, Price: mustDecimal(t, "2.25")},
				{ProductID: 6, Quantity: 2, Price: mustDecimal(t, "2")},
			},
		},
	}

	d := Daily(sales, ProductsByID(products), dayStart, dayEnd)

	if d.TotalOrders != 2 {
		t.Errorf("expected 2 orders, got %d", d.TotalOrders)
	}
	if !d.TotalRevenue.Equal(mustDecimal(t, "80")) {
		t.Errorf("expected revenue 80, got %s", d.TotalRevenue)
	}
	if !d.AverageOrderValue.Equal(mustDecimal(t, "40")) {
		t.Errorf("expected average order value 40, got %s", d.AverageOrderValue)
	}

	if len(d.PopularItems) != 5 {
		t.Fatalf("expected 5 popular items, got %d", len(d.PopularItems))
	}
	wantNames := []string{"Glazed Donut", "Chocolate Donut", "Bacon Kolache", "Breakfast Taco", "Croissant"}
	for i, name := range wantNames {
		if d.PopularItems[i].Name != name {
			t.Errorf("popular item %d: expected %q, got %q", i, name, d.PopularItems[i].Name)
		}
	}
	if d.PopularItems[0].QuantitySold != 12 {
		t.Errorf("expected 12 units for the top item, got %d", d.PopularItems[0].QuantitySold)
	}
}

func TestDailySkipsDeletedProductsInRanking(t *testing.T) {
	dayStart := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)

	products := []models.Product{{ID: 1, Name: "Glazed Donut", Category: models.CategoryDonuts}}
	sales := []models.Sale{
		{
			TotalAmount: mustDecimal(t, "25"),
			Timestamp:   dayStart.Add(time.Hour),
			Items: []models.SaleItem{
				{ProductID: 99, Quantity: 10, Price: mustDecimal(t, "2")}, // deleted product
				{ProductID: 1, Quantity: 2, Price: mustDecimal(t, "1.5")},
			},
		},
	}

	d := Daily(sales, ProductsByID(products), dayStart, dayEnd)

	// The sale still counts towards the totals.
	if d.TotalOrders != 1 || !d.TotalRevenue.Equal(mustDecimal(t, "25")) {
		t.Errorf("totals should include the sale: orders=%d revenue=%s", d.TotalOrders, d.TotalRevenue)
	}
	if len(d.PopularItems) != 1 {
		t.Fatalf("expected 1 rankable item, got %d", len(d.PopularItems))
	}
	if d.PopularItems[0].Name != "Glazed Donut" {
		t.Errorf("expected only the surviving product in the ranking, got %q", d.PopularItems[0].Name)
	}
}

func TestByCategory(t *testing.T) {
	dayStart := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)

	products := []models.Product{
		{ID: 1, Name: "Glazed Donut", Category: models.CategoryDonuts},
		{ID: 2, Name: "Chocolate Donut", Category: models.CategoryDonuts},
		{ID: 3, Name: "Drip Coffee", Category: models.CategoryCoffee},
	}
	sales := []models.Sale{
		{
			Timestamp: dayStart.Add(7 * time.Hour),
			Items: []models.SaleItem{
				{ProductID: 1, Quantity: 2, Price: mustDecimal(t, "1.5")},
				{ProductID: 3, Quantity: 1, Price: mustDecimal(t, "2")},
			},
		},
		{
			Timestamp: dayStart.Add(12 * time.Hour),
			Items: []models.SaleItem{
				{ProductID: 2, Quantity: 3, Price: mustDecimal(t, "1.75")},
				{ProductID: 42, Quantity: 1, Price: mustDecimal(t, "9")}, // deleted product
			},
		},
	}

	stats := ByCategory(sales, ProductsByID(products), dayStart, dayEnd)

	donuts := stats[models.CategoryDonuts]
	if !donuts.Revenue.Equal(mustDecimal(t, "8.25")) {
		t.Errorf("expected donut revenue 8.25, got %s", donuts.Revenue)
	}
	if donuts.Quantity != 5 {
		t.Errorf("expected 5 donut units, got %d", donuts.Quantity)
	}
	if donuts.Orders != 2 {
		t.Errorf("expected 2 donut line entries, got %d", donuts.Orders)
	}

	coffee := stats[models.CategoryCoffee]
	if !coffee.Revenue.Equal(mustDecimal(t, "2")) || coffee.Quantity != 1 {
		t.Errorf("unexpected coffee stats: %+v", coffee)
	}

	if len(stats) != 2 {
		t.Errorf("dangling lines should not create a category, got %d categories", len(stats))
	}
}

package backoffice

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/marqedonuts/backoffice/internal/models"
	"github.com/marqedonuts/backoffice/internal/repo"
	"github.com/marqedonuts/backoffice/internal/report"
	"github.com/marqedonuts/backoffice/internal/stock"
)

func newTestService() (*Service, *repo.InMemoryProductRepository, *repo.InMemoryInventoryRepository) {
	products := repo.NewInMemoryProductRepository()
	inventory := repo.NewInMemoryInventoryRepository()
	svc := NewService(
		products,
		inventory,
		repo.NewInMemorySaleRepository(),
		repo.NewInMemoryEmployeeRepository(),
		repo.NewInMemoryCustomerRepository(),
	)
	return svc, products, inventory
}

func validDraft() ProductDraft {
	return ProductDraft{
		Name:     "Glazed Donut",
		Category: "donuts",
		Price:    "1.50",
		Cost:     "0.35",
		PrepTime: "15",
	}
}

func TestAddProduct(t *testing.T) {
	svc, _, inventory := newTestService()

	created, err := svc.AddProduct(validDraft())
	if err != nil {
		t.Fatalf("AddProduct failed: %v", err)
	}
	if created.ID == 0 {
		t.Error("expected assigned id")
	}
	if !created.Price.Equal(decimal.RequireFromString("1.50")) {
		t.Errorf("expected price 1.50, got %s", created.Price)
	}
	if !created.IsAvailable {
		t.Error("availability should default to true")
	}

	item, err := inventory.GetByProductID(created.ID)
	if err != nil {
		t.Fatalf("expected seeded inventory row: %v", err)
	}
	if item.Quantity != 0 || item.MinThreshold != 10 || item.MaxCapacity != 100 {
		t.Errorf("unexpected seeded inventory row: %+v", item)
	}
}

func TestAddProductValidation(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*ProductDraft)
		wantFields  []string
	}{
		{
			name:       "empty name",
			mutate:     func(d *ProductDraft) { d.Name = "   " },
			wantFields: []string{"name"},
		},
		{
			name:       "unparsable price",
			mutate:     func(d *ProductDraft) { d.Price = "a lot" },
			wantFields: []string{"price"},
		},
		{
			name:       "negative price",
			mutate:     func(d *ProductDraft) { d.Price = "-1" },
			wantFields: []string{"price"},
		},
		{
			name:       "negative cost",
			mutate:     func(d *ProductDraft) { d.Cost = "-0.10" },
			wantFields: []string{"cost"},
		},
		{
			name: "everything wrong at once",
			mutate: func(d *ProductDraft) {
				d.Name = ""
				d.Price = "free"
				d.Cost = "-1"
			},
			wantFields: []string{"name", "price", "cost"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, products, inventory := newTestService()

			draft := validDraft()
			tt.mutate(&draft)

			_, err := svc.AddProduct(draft)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}

			for _, field := range tt.wantFields {
				found := false
				for _, fe := range verr.Fields {
					if fe.Field == field {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("expected error for field %q, got %+v", field, verr.Fields)
				}
			}

			// Nothing may be written on a rejected draft.
			all, _ := products.GetAll()
			if len(all) != 0 {
				t.Errorf("rejected draft left %d products behind", len(all))
			}
			items, _ := inventory.GetAll()
			if len(items) != 0 {
				t.Errorf("rejected draft left %d inventory rows behind", len(items))
			}
		})
	}
}

func TestAddProductLenientFields(t *testing.T) {
	svc, _, _ := newTestService()

	draft := validDraft()
	draft.PrepTime = "abc"
	draft.Category = "sushi"
	draft.Ingredients = []string{" flour ", "", "  ", "sugar"}

	created, err := svc.AddProduct(draft)
	if err != nil {
		t.Fatalf("AddProduct failed: %v", err)
	}
	if created.PrepTime != 0 {
		t.Errorf("unparsable prep time should default to 0, got %d", created.PrepTime)
	}
	if created.Category != models.CategoryOther {
		t.Errorf("unknown category should map to other, got %q", created.Category)
	}
	want := []string{"flour", "sugar"}
	if len(created.Ingredients) != len(want) {
		t.Fatalf("expected ingredients %v, got %v", want, created.Ingredients)
	}
	for i := range want {
		if created.Ingredients[i] != want[i] {
			t.Errorf("ingredient %d: expected %q, got %q", i, want[i], created.Ingredients[i])
		}
	}
}

func TestAddProductNegativePrepTimeDefaultsToZero(t *testing.T) {
	svc, _, _ := newTestService()

	draft := validDraft()
	draft.PrepTime = "-5"

	created, err := svc.AddProduct(draft)
	if err != nil {
		t.Fatalf("AddProduct failed: %v", err)
	}
	if created.PrepTime != 0 {
		t.Errorf("negative prep time should default to 0, got %d", created.PrepTime)
	}
}

func TestListProductsCategoryFilter(t *testing.T) {
	svc, _, _ := newTestService()

	drafts := []ProductDraft{
		{Name: "Glazed Donut", Category: "donuts", Price: "1.5", Cost: "0.3"},
		{Name: "Breakfast Taco", Category: "tacos", Price: "3", Cost: "1"},
		{Name: "Drip Coffee", Category: "coffee", Price: "2", Cost: "0.4"},
	}
	for _, d := range drafts {
		if _, err := svc.AddProduct(d); err != nil {
			t.Fatalf("seed product %q: %v", d.Name, err)
		}
	}

	donuts, err := svc.ListProducts("donuts")
	if err != nil {
		t.Fatalf("ListProducts failed: %v", err)
	}
	if len(donuts) != 1 || donuts[0].Name != "Glazed Donut" {
		t.Errorf("expected only the donut, got %+v", donuts)
	}

	all, err := svc.ListProducts("all")
	if err != nil {
		t.Fatalf("ListProducts failed: %v", err)
	}
	absent, err := svc.ListProducts("")
	if err != nil {
		t.Fatalf("ListProducts failed: %v", err)
	}
	if len(all) != 3 || len(absent) != 3 {
		t.Errorf(`"all" and absent filter should both return everything, got %d and %d`, len(all), len(absent))
	}

	none, err := svc.ListProducts("beverages")
	if err != nil {
		t.Fatalf("ListProducts failed: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("expected no beverages, got %+v", none)
	}
}

func TestListInventoryJoinsAndClassifies(t *testing.T) {
	svc, products, inventory := newTestService()

	p, err := products.Create(models.Product{Name: "Glazed Donut", Category: models.CategoryDonuts})
	if err != nil {
		t.Fatalf("seed product: %v", err)
	}
	if _, err := inventory.Create(models.InventoryItem{ProductID: p.ID, Quantity: 3, MinThreshold: 5}); err != nil {
		t.Fatalf("seed inventory: %v", err)
	}
	// row referencing a product that no longer exists
	if _, err := inventory.Create(models.InventoryItem{ProductID: 999, Quantity: 20, MinThreshold: 5}); err != nil {
		t.Fatalf("seed orphan inventory: %v", err)
	}

	views, err := svc.ListInventory()
	if err != nil {
		t.Fatalf("ListInventory failed: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(views))
	}
	if views[0].ProductName != "Glazed Donut" || views[0].Status != stock.LowStock {
		t.Errorf("unexpected first view: %+v", views[0])
	}
	if views[1].ProductName != report.UnknownProductName {
		t.Errorf("dangling row should use the placeholder name, got %q", views[1].ProductName)
	}
	if views[1].Status != stock.InStock {
		t.Errorf("dangling row still gets a derived status, got %q", views[1].Status)
	}
}

func TestUpdateInventory(t *testing.T) {
	svc, _, inventory := newTestService()

	created, err := svc.AddProduct(validDraft())
	if err != nil {
		t.Fatalf("AddProduct failed: %v", err)
	}

	qty := 42
	threshold := 8
	item, err := svc.UpdateInventory(created.ID, InventoryUpdate{Quantity: &qty, MinThreshold: &threshold})
	if err != nil {
		t.Fatalf("UpdateInventory failed: %v", err)
	}
	if item.Quantity != 42 || item.MinThreshold != 8 {
		t.Errorf("unexpected updated row: %+v", item)
	}
	if item.LastRestocked.IsZero() {
		t.Error("quantity change should stamp LastRestocked")
	}
	if item.MaxCapacity != 100 {
		t.Errorf("untouched field should keep its value, got %d", item.MaxCapacity)
	}

	negative := -1
	if _, err := svc.UpdateInventory(created.ID, InventoryUpdate{Quantity: &negative}); err == nil {
		t.Fatal("expected validation error for negative quantity")
	}
	stored, _ := inventory.GetByProductID(created.ID)
	if stored.Quantity != 42 {
		t.Errorf("rejected update should not change stored quantity, got %d", stored.Quantity)
	}
}

func TestLowStockAlertsThroughService(t *testing.T) {
	svc, _, _ := newTestService()

	created, err := svc.AddProduct(validDraft())
	if err != nil {
		t.Fatalf("AddProduct failed: %v", err)
	}
	// seeded with quantity 0, so the fresh product is immediately out of stock
	alerts, err := svc.LowStockAlerts()
	if err != nil {
		t.Fatalf("LowStockAlerts failed: %v", err)
	}
	if len(alerts) != 1 {
		t.Fatalf("expected 1 alert, got %d", len(alerts))
	}
	if alerts[0].ProductID != created.ID || alerts[0].Status != stock.OutOfStock {
		t.Errorf("unexpected alert: %+v", alerts[0])
	}

	qty := 50
	if _, err := svc.UpdateInventory(created.ID, InventoryUpdate{Quantity: &qty}); err != nil {
		t.Fatalf("UpdateInventory failed: %v", err)
	}
	alerts, err = svc.LowStockAlerts()
	if err != nil {
		t.Fatalf("LowStockAlerts failed: %v", err)
	}
	if len(alerts) != 0 {
		t.Errorf("expected no alerts after restocking, got %+v", alerts)
	}
}

func TestDeleteProductKeepsSalesHistoryReadable(t *testing.T) {
	svc, _, _ := newTestService()

	created, err := svc.AddProduct(validDraft())
	if err != nil {
		t.Fatalf("AddProduct failed: %v", err)
	}
	if err := svc.DeleteProduct(created.ID); err != nil {
		t.Fatalf("DeleteProduct failed: %v", err)
	}
	if _, err := svc.GetProduct(created.ID); err != repo.ErrProductNotFound {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
	// the inventory row is gone too
	if _, err := svc.GetInventoryItem(created.ID); err != repo.ErrInventoryItemNotFound {
		t.Errorf("expected ErrInventoryItemNotFound, got %v", err)
	}
}

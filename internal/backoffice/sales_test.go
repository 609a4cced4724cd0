package backoffice

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/marqedonuts/backoffice/internal/models"
)

func seedStockedProduct(t *testing.T, svc *Service, name string, quantity int) models.Product {
	t.Helper()
	draft := validDraft()
	draft.Name = name
	p, err := svc.AddProduct(draft)
	if err != nil {
		t.Fatalf("seed product %q: %v", name, err)
	}
	if _, err := svc.UpdateInventory(p.ID, InventoryUpdate{Quantity: &quantity}); err != nil {
		t.Fatalf("stock product %q: %v", name, err)
	}
	return p
}

func TestRecordSale(t *testing.T) {
	svc, _, _ := newTestService()
	p := seedStockedProduct(t, svc, "Glazed Donut", 20)

	sale, err := svc.RecordSale(SaleDraft{
		Items:       []models.SaleItem{{ProductID: p.ID, Quantity: 3, Price: decimal.RequireFromString("1.5")}},
		TotalAmount: "4.50",
	})
	if err != nil {
		t.Fatalf("RecordSale failed: %v", err)
	}
	if sale.ID == 0 {
		t.Error("expected assigned sale id")
	}
	if sale.PaymentMethod != "cash" || sale.OrderType != "dine_in" {
		t.Errorf("expected cash/dine_in defaults, got %s/%s", sale.PaymentMethod, sale.OrderType)
	}

	item, err := svc.GetInventoryItem(p.ID)
	if err != nil {
		t.Fatalf("GetInventoryItem failed: %v", err)
	}
	if item.Quantity != 17 {
		t.Errorf("expected stock 17 after sale, got %d", item.Quantity)
	}
}

func TestRecordSaleValidation(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.RecordSale(SaleDraft{TotalAmount: "not money"})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	fields := map[string]bool{}
	for _, fe := range verr.Fields {
		fields[fe.Field] = true
	}
	if !fields["items"] || !fields["total_amount"] {
		t.Errorf("expected items and total_amount errors, got %+v", verr.Fields)
	}

	sales, _ := svc.RecentSales(10)
	if len(sales) != 0 {
		t.Errorf("rejected sale must not be persisted, got %d sales", len(sales))
	}
}

func TestRecordSaleClampsStockAtZero(t *testing.T) {
	svc, _, _ := newTestService()
	p := seedStockedProduct(t, svc, "Boston Cream", 2)

	_, err := svc.RecordSale(SaleDraft{
		Items:       []models.SaleItem{{ProductID: p.ID, Quantity: 10, Price: decimal.RequireFromString("2")}},
		TotalAmount: "20",
	})
	if err != nil {
		t.Fatalf("RecordSale failed: %v", err)
	}

	item, err := svc.GetInventoryItem(p.ID)
	if err != nil {
		t.Fatalf("GetInventoryItem failed: %v", err)
	}
	if item.Quantity != 0 {
		t.Errorf("overselling should clamp stock at 0, got %d", item.Quantity)
	}
}

func TestRecordSaleIgnoresLinesWithoutInventory(t *testing.T) {
	svc, _, _ := newTestService()

	sale, err := svc.RecordSale(SaleDraft{
		Items:       []models.SaleItem{{ProductID: 555, Quantity: 1, Price: decimal.RequireFromString("3")}},
		TotalAmount: "3",
	})
	if err != nil {
		t.Fatalf("sale for an untracked product should still record: %v", err)
	}
	if sale.ID == 0 {
		t.Error("expected assigned sale id")
	}
}

func TestRecordSaleCreditsCustomer(t *testing.T) {
	svc, _, _ := newTestService()
	p := seedStockedProduct(t, svc, "Glazed Donut", 20)

	customer, err := svc.AddCustomer(CustomerDraft{Name: "Maria Lopez"})
	if err != nil {
		t.Fatalf("AddCustomer failed: %v", err)
	}

	_, err = svc.RecordSale(SaleDraft{
		Items:        []models.SaleItem{{ProductID: p.ID, Quantity: 5, Price: decimal.RequireFromString("1.5")}},
		TotalAmount:  "7.50",
		CustomerName: "Maria Lopez",
	})
	if err != nil {
		t.Fatalf("RecordSale failed: %v", err)
	}

	customers, err := svc.ListCustomersBySpend()
	if err != nil {
		t.Fatalf("ListCustomersBySpend failed: %v", err)
	}
	if len(customers) != 1 || customers[0].ID != customer.ID {
		t.Fatalf("expected the seeded customer, got %+v", customers)
	}
	got := customers[0]
	if got.TotalOrders != 1 {
		t.Errorf("expected 1 order, got %d", got.TotalOrders)
	}
	if !got.TotalSpent.Equal(decimal.RequireFromString("7.50")) {
		t.Errorf("expected total spent 7.50, got %s", got.TotalSpent)
	}
	if got.LoyaltyPoints != 7 {
		t.Errorf("loyalty points truncate to whole dollars, expected 7, got %d", got.LoyaltyPoints)
	}
}

func TestRecordSaleUnregisteredCustomerIsNoOp(t *testing.T) {
	svc, _, _ := newTestService()
	p := seedStockedProduct(t, svc, "Glazed Donut", 20)

	_, err := svc.RecordSale(SaleDraft{
		Items:        []models.SaleItem{{ProductID: p.ID, Quantity: 1, Price: decimal.RequireFromString("1.5")}},
		TotalAmount:  "1.50",
		CustomerName: "Walk In",
	})
	if err != nil {
		t.Fatalf("sale with an unregistered customer name should record: %v", err)
	}
}

func TestRecentSalesNewestFirst(t *testing.T) {
	svc, _, _ := newTestService()
	p := seedStockedProduct(t, svc, "Glazed Donut", 100)

	for _, total := range []string{"1", "2", "3"} {
		_, err := svc.RecordSale(SaleDraft{
			Items:       []models.SaleItem{{ProductID: p.ID, Quantity: 1, Price: decimal.RequireFromString("1")}},
			TotalAmount: total,
		})
		if err != nil {
			t.Fatalf("RecordSale failed: %v", err)
		}
	}

	sales, err := svc.RecentSales(2)
	if err != nil {
		t.Fatalf("RecentSales failed: %v", err)
	}
	if len(sales) != 2 {
		t.Fatalf("expected 2 sales, got %d", len(sales))
	}
	if !sales[0].TotalAmount.Equal(decimal.RequireFromString("3")) {
		t.Errorf("expected newest sale first, got %s", sales[0].TotalAmount)
	}
}

func TestAddEmployee(t *testing.T) {
	svc, _, _ := newTestService()

	e, err := svc.AddEmployee(EmployeeDraft{Name: "Sam Reyes", Role: "baker"})
	if err != nil {
		t.Fatalf("AddEmployee failed: %v", err)
	}
	if !e.HourlyWage.Equal(decimal.NewFromInt(15)) {
		t.Errorf("blank wage should default to 15, got %s", e.HourlyWage)
	}
	if !e.IsActive {
		t.Error("new employees start active")
	}

	_, err = svc.AddEmployee(EmployeeDraft{Name: "Nobody", Role: "astronaut"})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for bad role, got %v", err)
	}

	active, err := svc.ListActiveEmployees()
	if err != nil {
		t.Fatalf("ListActiveEmployees failed: %v", err)
	}
	if len(active) != 1 {
		t.Errorf("expected 1 active employee, got %d", len(active))
	}
}

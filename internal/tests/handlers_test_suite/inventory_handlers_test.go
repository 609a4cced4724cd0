package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/marqedonuts/backoffice/internal/backoffice"
	handler "github.com/marqedonuts/backoffice/internal/http/handlers"
	"github.com/marqedonuts/backoffice/internal/models"
	"github.com/marqedonuts/backoffice/internal/report"
)

func TestUpdateInventoryHandler(t *testing.T) {
	t.Cleanup(clearAllRecords)

	created := mustCreateProduct(router, glazedDraft())

	w := updateInventory(router, created.ID, backoffice.InventoryUpdate{
		Quantity:     intPtr(30),
		MinThreshold: intPtr(5),
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp handler.InventoryItemResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Quantity != 30 || resp.MinThreshold != 5 {
		t.Errorf("unexpected row: %+v", resp)
	}
	if resp.Status != "in_stock" {
		t.Errorf("expected in_stock, got %q", resp.Status)
	}
	if resp.LastRestocked.IsZero() {
		t.Error("quantity change should stamp last_restocked")
	}
}

func TestUpdateInventoryHandler_Invalid(t *testing.T) {
	t.Cleanup(clearAllRecords)

	created := mustCreateProduct(router, glazedDraft())

	w := updateInventory(router, created.ID, backoffice.InventoryUpdate{Quantity: intPtr(-3)})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for negative quantity, got %d", w.Code)
	}

	w = updateInventory(router, 99999, backoffice.InventoryUpdate{Quantity: intPtr(3)})
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown product, got %d", w.Code)
	}

	req := authorizedRequest(http.MethodPut, "/api/inventory/notanumber", bytes.NewBufferString(`{}`))
	if w := serve(router, req); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for malformed id, got %d", w.Code)
	}
}

func TestGetInventoryHandler_DerivesStatus(t *testing.T) {
	t.Cleanup(clearAllRecords)

	low := mustCreateProduct(router, glazedDraft())
	if w := updateInventory(router, low.ID, backoffice.InventoryUpdate{
		Quantity:     intPtr(3),
		MinThreshold: intPtr(5),
	}); w.Code != http.StatusOK {
		t.Fatalf("inventory setup failed: %d", w.Code)
	}

	stockedDraft := glazedDraft()
	stockedDraft.Name = "Apple Fritter"
	stocked := mustCreateProduct(router, stockedDraft)
	if w := updateInventory(router, stocked.ID, backoffice.InventoryUpdate{Quantity: intPtr(80)}); w.Code != http.StatusOK {
		t.Fatalf("inventory setup failed: %d", w.Code)
	}

	w := serve(router, httptest.NewRequest(http.MethodGet, "/api/inventory", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var rows []handler.InventoryItemResponse
	if err := json.NewDecoder(w.Body).Decode(&rows); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	byProduct := map[int]handler.InventoryItemResponse{}
	for _, row := range rows {
		byProduct[row.ProductID] = row
	}
	if got := byProduct[low.ID]; got.Status != "low_stock" || got.ProductName != "Glazed Donut" {
		t.Errorf("unexpected low row: %+v", got)
	}
	if got := byProduct[stocked.ID]; got.Status != "in_stock" || got.ProductName != "Apple Fritter" {
		t.Errorf("unexpected stocked row: %+v", got)
	}
}

func TestGetInventoryHandler_DanglingProductKeepsRow(t *testing.T) {
	t.Cleanup(clearAllRecords)

	// seed a row pointing at a product that was never created
	if _, err := inventoryRepo.Create(models.InventoryItem{
		ProductID:    777,
		Quantity:     2,
		MinThreshold: 5,
	}); err != nil {
		t.Fatalf("seed inventory: %v", err)
	}

	w := serve(router, httptest.NewRequest(http.MethodGet, "/api/inventory", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var rows []handler.InventoryItemResponse
	if err := json.NewDecoder(w.Body).Decode(&rows); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("dangling row must not be dropped, got %d rows", len(rows))
	}
	if rows[0].ProductName != report.UnknownProductName {
		t.Errorf("expected placeholder name %q, got %q", report.UnknownProductName, rows[0].ProductName)
	}
	if rows[0].Status != "low_stock" {
		t.Errorf("dangling row still gets a derived status, got %q", rows[0].Status)
	}
}

func TestGetLowStockAlertsHandler_Order(t *testing.T) {
	t.Cleanup(clearAllRecords)

	names := []string{"Glazed Donut", "Boston Cream", "Apple Fritter"}
	ids := make([]int, 0, len(names))
	for _, name := range names {
		draft := glazedDraft()
		draft.Name = name
		created := mustCreateProduct(router, draft)
		ids = append(ids, created.ID)
	}

	w := serve(router, httptest.NewRequest(http.MethodGet, "/api/inventory/alerts/low-stock", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var alerts []report.Alert
	if err := json.NewDecoder(w.Body).Decode(&alerts); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(alerts) != 3 {
		t.Fatalf("expected 3 alerts, got %d", len(alerts))
	}
	for i, id := range ids {
		if alerts[i].ProductID != id {
			t.Errorf("alert %d: expected product %d, got %d", i, id, alerts[i].ProductID)
		}
		if alerts[i].Status != "out_of_stock" {
			t.Errorf("alert %d: expected out_of_stock, got %q", i, alerts[i].Status)
		}
	}
}

func TestGetInventoryItemHandler(t *testing.T) {
	t.Cleanup(clearAllRecords)

	created := mustCreateProduct(router, glazedDraft())

	w := serve(router, httptest.NewRequest(http.MethodGet, "/api/inventory/"+itoa(created.ID), nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp handler.InventoryItemResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.ProductID != created.ID || resp.ProductName != "Glazed Donut" {
		t.Errorf("unexpected row: %+v", resp)
	}
	if resp.Quantity != 0 || resp.MinThreshold != 10 || resp.MaxCapacity != 100 {
		t.Errorf("expected the seeded defaults, got %+v", resp)
	}

	w = serve(router, httptest.NewRequest(http.MethodGet, "/api/inventory/99999", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for untracked product, got %d", w.Code)
	}
}

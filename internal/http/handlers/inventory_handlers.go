package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/marqedonuts/backoffice/internal/backoffice"
	"github.com/marqedonuts/backoffice/internal/http/restock"
	"github.com/marqedonuts/backoffice/internal/repo"
	"github.com/marqedonuts/backoffice/internal/report"
	"github.com/marqedonuts/backoffice/internal/stock"
)

// GetInventoryHandler godoc
// @Summary List inventory joined to products
// @Description Rows referencing deleted products stay in the list under a placeholder name
// @Tags inventory
// @Produce json
// @Success 200 {array} InventoryItemResponse
// @Failure 500 {string} string "Internal error"
// @Router /api/inventory [get]
func GetInventoryHandler(w http.ResponseWriter, r *http.Request) {
	views, err := svc.ListInventory()
	if err != nil {
		http.Error(w, "could not fetch inventory", http.StatusInternalServerError)
		return
	}
	resp := make([]InventoryItemResponse, len(views))
	for i, v := range views {
		resp[i] = toInventoryItemResponse(v)
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetInventoryItemHandler godoc
// @Summary Get the inventory row for one product
// @Tags inventory
// @Produce json
// @Param productId path int true "Product ID"
// @Success 200 {object} InventoryItemResponse
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /api/inventory/{productId} [get]
func GetInventoryItemHandler(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(chi.URLParam(r, "productId"))
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	item, err := svc.GetInventoryItem(productID)
	if err != nil {
		if errors.Is(err, repo.ErrInventoryItemNotFound) {
			http.Error(w, "inventory item not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch inventory item", http.StatusInternalServerError)
		return
	}

	name := productNameFor(productID)
	writeJSON(w, http.StatusOK, toInventoryItemResponse(backoffice.InventoryView{
		Item:        item,
		ProductName: name,
		Status:      stock.Classify(item.Quantity, item.MinThreshold),
	}))
}

// UpdateInventoryHandler godoc
// @Summary Adjust quantity, threshold or capacity for one product
// @Description A quantity change counts as a restock and stamps last_restocked
// @Tags inventory
// @Accept json
// @Produce json
// @Param productId path int true "Product ID"
// @Param update body backoffice.InventoryUpdate true "Fields to change"
// @Success 200 {object} InventoryItemResponse
// @Failure 400 {array} backoffice.FieldError
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /api/inventory/{productId} [put]
// @Security BearerAuth
func UpdateInventoryHandler(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(chi.URLParam(r, "productId"))
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	var upd backoffice.InventoryUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	item, err := svc.UpdateInventory(productID, upd)
	if err != nil {
		if errors.Is(err, repo.ErrInventoryItemNotFound) {
			http.Error(w, "inventory item not found", http.StatusNotFound)
			return
		}
		if writeServiceError(w, err, "could not update inventory") {
			return
		}
	}

	status := stock.Classify(item.Quantity, item.MinThreshold)
	name := productNameFor(productID)
	if status.NeedsRestock() {
		log.Printf("⚠️ ALERT: %s is below threshold! Qty=%d, Threshold=%d",
			name, item.Quantity, item.MinThreshold)
		restock.LogAlert(report.Alert{
			ProductName:     name,
			ProductID:       productID,
			CurrentQuantity: item.Quantity,
			MinThreshold:    item.MinThreshold,
			Status:          status,
		})
	}

	invalidateOverview()
	writeJSON(w, http.StatusOK, toInventoryItemResponse(backoffice.InventoryView{
		Item:        item,
		ProductName: name,
		Status:      status,
	}))
}

// GetLowStockAlertsHandler godoc
// @Summary List items needing restock attention
// @Tags inventory
// @Produce json
// @Success 200 {array} report.Alert
// @Failure 500 {string} string "Internal error"
// @Router /api/inventory/alerts/low-stock [get]
func GetLowStockAlertsHandler(w http.ResponseWriter, r *http.Request) {
	alerts, err := svc.LowStockAlerts()
	if err != nil {
		http.Error(w, "could not fetch alerts", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, alerts)
}

func productNameFor(productID int) string {
	if p, err := svc.GetProduct(productID); err == nil {
		return p.Name
	}
	return report.UnknownProductName
}

package handlers

import (
	"encoding/csv"
	"net/http"
	"strconv"
	"time"

	"github.com/marqedonuts/backoffice/internal/backoffice"
	"github.com/marqedonuts/backoffice/internal/http/restock"
	"github.com/marqedonuts/backoffice/internal/models"
	"github.com/marqedonuts/backoffice/internal/report"
	"github.com/marqedonuts/backoffice/internal/stock"
)

// CreateSaleHandler godoc
// @Summary Record a point-of-sale transaction
// @Description Decrements stock for each line and credits the named customer's loyalty totals
// @Tags sales
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sale body backoffice.SaleDraft true "Sale to record"
// @Success 201 {object} SaleResponse
// @Failure 400 {array} backoffice.FieldError
// @Failure 500 {string} string "Internal error"
// @Router /api/sales [post]
func CreateSaleHandler(w http.ResponseWriter, r *http.Request) {
	var draft backoffice.SaleDraft
	if err := readJSON(w, r, &draft); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	sale, err := svc.RecordSale(draft)
	if err != nil {
		if writeServiceError(w, err, "could not record sale") {
			return
		}
	}

	logTriggeredAlerts(sale.Items)
	invalidateOverview()
	writeJSON(w, http.StatusCreated, toSaleResponse(sale))
}

// GetSalesHandler godoc
// @Summary List recent sales, newest first
// @Tags sales
// @Produce json
// @Param limit query int false "Maximum sales to return (default 100)"
// @Success 200 {array} SaleResponse
// @Failure 500 {string} string "Internal error"
// @Router /api/sales [get]
func GetSalesHandler(w http.ResponseWriter, r *http.Request) {
	limit := 100
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
		limit = v
	}

	sales, err := svc.RecentSales(limit)
	if err != nil {
		http.Error(w, "could not fetch sales", http.StatusInternalServerError)
		return
	}

	resp := make([]SaleResponse, len(sales))
	for i, s := range sales {
		resp[i] = toSaleResponse(s)
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetDailyAnalyticsHandler godoc
// @Summary Today's sales summary with top sellers
// @Tags sales
// @Produce json
// @Success 200 {object} DailyAnalyticsResponse
// @Failure 500 {string} string "Internal error"
// @Router /api/sales/analytics/daily [get]
func GetDailyAnalyticsHandler(w http.ResponseWriter, r *http.Request) {
	dayStart, dayEnd := dayBounds()
	daily, err := svc.DailySales(dayStart, dayEnd)
	if err != nil {
		http.Error(w, "could not compute analytics", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, toDailyAnalyticsResponse(daily))
}

// GetCategoryAnalyticsHandler godoc
// @Summary Today's revenue and volume per category
// @Tags sales
// @Produce json
// @Success 200 {object} map[string]CategoryStatsResponse
// @Failure 500 {string} string "Internal error"
// @Router /api/sales/analytics/category [get]
func GetCategoryAnalyticsHandler(w http.ResponseWriter, r *http.Request) {
	dayStart, dayEnd := dayBounds()
	stats, err := svc.CategoryBreakdown(dayStart, dayEnd)
	if err != nil {
		http.Error(w, "could not compute analytics", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, toCategoryStatsResponse(stats))
}

// ExportSalesCSVHandler godoc
// @Summary Export recent sales as CSV
// @Tags sales
// @Produce text/csv
// @Param limit query int false "Maximum sales to export (default 1000)"
// @Success 200 {string} string "CSV payload"
// @Failure 500 {string} string "Internal error"
// @Router /api/sales/export [get]
func ExportSalesCSVHandler(w http.ResponseWriter, r *http.Request) {
	limit := 1000
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
		limit = v
	}

	sales, err := svc.RecentSales(limit)
	if err != nil {
		http.Error(w, "could not fetch sales", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="sales.csv"`)

	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"id", "timestamp", "total_amount", "payment_method", "customer_name", "order_type", "line_items"})
	for _, s := range sales {
		_ = cw.Write([]string{
			strconv.Itoa(s.ID),
			s.Timestamp.Format(time.RFC3339),
			s.TotalAmount.Round(2).String(),
			s.PaymentMethod,
			s.CustomerName,
			s.OrderType,
			strconv.Itoa(len(s.Items)),
		})
	}
	cw.Flush()
}

// logTriggeredAlerts records restock events for sold products that fell
// to or below their threshold.
func logTriggeredAlerts(items []models.SaleItem) {
	for _, line := range items {
		item, err := svc.GetInventoryItem(line.ProductID)
		if err != nil {
			continue
		}
		status := stock.Classify(item.Quantity, item.MinThreshold)
		if !status.NeedsRestock() {
			continue
		}
		restock.LogAlert(report.Alert{
			ProductName:     productNameFor(line.ProductID),
			ProductID:       line.ProductID,
			CurrentQuantity: item.Quantity,
			MinThreshold:    item.MinThreshold,
			Status:          status,
		})
	}
}

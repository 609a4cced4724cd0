package handlers

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/marqedonuts/backoffice/internal/backoffice"
	"github.com/marqedonuts/backoffice/internal/models"
	"github.com/marqedonuts/backoffice/internal/report"
)

// money rounds a monetary amount to cents for the wire. Rounding happens
// here and nowhere else; everything upstream keeps full precision.
func money(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}

type ProductResponse struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	Cost        float64   `json:"cost"`
	Description string    `json:"description,omitempty"`
	Ingredients []string  `json:"ingredients"`
	PrepTime    int       `json:"prep_time"`
	IsAvailable bool      `json:"is_available"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
	UpdatedAt   time.Time `json:"updated_at,omitempty"`
}

func toProductResponse(p models.Product) ProductResponse {
	ingredients := p.Ingredients
	if ingredients == nil {
		ingredients = []string{}
	}
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Category:    string(p.Category),
		Price:       money(p.Price),
		Cost:        money(p.Cost),
		Description: p.Description,
		Ingredients: ingredients,
		PrepTime:    p.PrepTime,
		IsAvailable: p.IsAvailable,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toProductResponses(products []models.Product) []ProductResponse {
	out := make([]ProductResponse, len(products))
	for i, p := range products {
		out[i] = toProductResponse(p)
	}
	return out
}

type Meta struct {
	TotalCount int `json:"total_count"`
}

type ProductsSearchResult struct {
	Data []ProductResponse `json:"data"`
	Meta Meta              `json:"meta,omitempty"`
}

type InventoryItemResponse struct {
	ID            int       `json:"id"`
	ProductID     int       `json:"product_id"`
	ProductName   string    `json:"product_name"`
	Quantity      int       `json:"quantity"`
	MinThreshold  int       `json:"min_threshold"`
	MaxCapacity   int       `json:"max_capacity"`
	Status        string    `json:"status"`
	LastRestocked time.Time `json:"last_restocked"`
}

func toInventoryItemResponse(v backoffice.InventoryView) InventoryItemResponse {
	return InventoryItemResponse{
		ID:            v.Item.ID,
		ProductID:     v.Item.ProductID,
		ProductName:   v.ProductName,
		Quantity:      v.Item.Quantity,
		MinThreshold:  v.Item.MinThreshold,
		MaxCapacity:   v.Item.MaxCapacity,
		Status:        string(v.Status),
		LastRestocked: v.Item.LastRestocked,
	}
}

type OverviewResponse struct {
	TodayRevenue      float64 `json:"today_revenue"`
	TodayOrders       int     `json:"today_orders"`
	LowStockAlerts    int     `json:"low_stock_alerts"`
	TotalProducts     int     `json:"total_products"`
	TotalCustomers    int     `json:"total_customers"`
	ActiveEmployees   int     `json:"active_employees"`
	AverageOrderValue float64 `json:"average_order_value"`
}

func toOverviewResponse(s report.Summary) OverviewResponse {
	return OverviewResponse{
		TodayRevenue:      money(s.TodayRevenue),
		TodayOrders:       s.TodayOrders,
		LowStockAlerts:    s.LowStockAlerts,
		TotalProducts:     s.TotalProducts,
		TotalCustomers:    s.TotalCustomers,
		ActiveEmployees:   s.ActiveEmployees,
		AverageOrderValue: money(s.AverageOrderValue),
	}
}

type SaleItemResponse struct {
	ProductID int     `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type SaleResponse struct {
	ID            int                `json:"id"`
	Items         []SaleItemResponse `json:"items"`
	TotalAmount   float64            `json:"total_amount"`
	PaymentMethod string             `json:"payment_method"`
	CustomerName  string             `json:"customer_name,omitempty"`
	EmployeeID    int                `json:"employee_id,omitempty"`
	OrderType     string             `json:"order_type"`
	Timestamp     time.Time          `json:"timestamp"`
}

func toSaleResponse(s models.Sale) SaleResponse {
	items := make([]SaleItemResponse, len(s.Items))
	for i, line := range s.Items {
		items[i] = SaleItemResponse{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     money(line.Price),
		}
	}
	return SaleResponse{
		ID:            s.ID,
		Items:         items,
		TotalAmount:   money(s.TotalAmount),
		PaymentMethod: s.PaymentMethod,
		CustomerName:  s.CustomerName,
		EmployeeID:    s.EmployeeID,
		OrderType:     s.OrderType,
		Timestamp:     s.Timestamp,
	}
}

type PopularItemResponse struct {
	Name         string `json:"name"`
	QuantitySold int    `json:"quantity_sold"`
	Category     string `json:"category"`
}

type DailyAnalyticsResponse struct {
	Date              string                `json:"date"`
	TotalRevenue      float64               `json:"total_revenue"`
	TotalOrders       int                   `json:"total_orders"`
	AverageOrderValue float64               `json:"average_order_value"`
	PopularItems      []PopularItemResponse `json:"popular_items"`
}

func toDailyAnalyticsResponse(d report.DailySales) DailyAnalyticsResponse {
	items := make([]PopularItemResponse, len(d.PopularItems))
	for i, p := range d.PopularItems {
		items[i] = PopularItemResponse{
			Name:         p.Name,
			QuantitySold: p.QuantitySold,
			Category:     string(p.Category),
		}
	}
	return DailyAnalyticsResponse{
		Date:              d.Date.Format(time.RFC3339),
		TotalRevenue:      money(d.TotalRevenue),
		TotalOrders:       d.TotalOrders,
		AverageOrderValue: money(d.AverageOrderValue),
		PopularItems:      items,
	}
}

type CategoryStatsResponse struct {
	Revenue  float64 `json:"revenue"`
	Quantity int     `json:"quantity"`
	Orders   int     `json:"orders"`
}

func toCategoryStatsResponse(stats map[models.Category]report.CategoryStats) map[string]CategoryStatsResponse {
	out := make(map[string]CategoryStatsResponse, len(stats))
	for category, cs := range stats {
		out[string(category)] = CategoryStatsResponse{
			Revenue:  money(cs.Revenue),
			Quantity: cs.Quantity,
			Orders:   cs.Orders,
		}
	}
	return out
}

type EmployeeResponse struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	Role       string    `json:"role"`
	Email      string    `json:"email,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	HourlyWage float64   `json:"hourly_wage"`
	HireDate   time.Time `json:"hire_date"`
	IsActive   bool      `json:"is_active"`
}

func toEmployeeResponse(e models.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         e.ID,
		Name:       e.Name,
		Role:       string(e.Role),
		Email:      e.Email,
		Phone:      e.Phone,
		HourlyWage: money(e.HourlyWage),
		HireDate:   e.HireDate,
		IsActive:   e.IsActive,
	}
}

type CustomerResponse struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	TotalOrders   int       `json:"total_orders"`
	TotalSpent    float64   `json:"total_spent"`
	LoyaltyPoints int       `json:"loyalty_points"`
	CreatedAt     time.Time `json:"created_at"`
}

func toCustomerResponse(c models.Customer) CustomerResponse {
	return CustomerResponse{
		ID:            c.ID,
		Name:          c.Name,
		Email:         c.Email,
		Phone:         c.Phone,
		TotalOrders:   c.TotalOrders,
		TotalSpent:    money(c.TotalSpent),
		LoyaltyPoints: c.LoyaltyPoints,
		CreatedAt:     c.CreatedAt,
	}
}

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

type RegisterResult struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type ImportProductsResult struct {
	ImportedProductsCount int                     `json:"imported"`
	Errors                []backoffice.FieldError `json:"errors"`
}

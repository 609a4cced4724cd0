package backoffice

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/marqedonuts/backoffice/internal/models"
	"github.com/marqedonuts/backoffice/internal/repo"
	"github.com/marqedonuts/backoffice/internal/report"
)

// SaleDraft is an unvalidated point-of-sale transaction payload.
type SaleDraft struct {
	Items         []models.SaleItem `json:"items"`
	TotalAmount   string            `json:"total_amount"`
	PaymentMethod string            `json:"payment_method"`
	CustomerName  string            `json:"customer_name"`
	EmployeeID    int               `json:"employee_id"`
	OrderType     string            `json:"order_type"`
}

// RecordSale validates and persists a sale, decrements stock for each
// line (never below zero; overselling is a data-entry reality, not an
// error), and credits the named customer's loyalty totals.
func (s *Service) RecordSale(draft SaleDraft) (models.Sale, error) {
	errs := []FieldError{}
	if len(draft.Items) == 0 {
		errs = append(errs, FieldError{Field: "items", Description: "at least one line item is required"})
	}
	total, err := decimal.NewFromString(strings.TrimSpace(draft.TotalAmount))
	if err != nil {
		errs = append(errs, FieldError{Field: "total_amount", Description: "total_amount must be a number"})
	} else if total.IsNegative() {
		errs = append(errs, FieldError{Field: "total_amount", Description: "total_amount cannot be negative"})
	}
	if len(errs) > 0 {
		return models.Sale{}, &ValidationError{Fields: errs}
	}

	sale := models.Sale{
		Items:         draft.Items,
		TotalAmount:   total,
		PaymentMethod: draft.PaymentMethod,
		CustomerName:  strings.TrimSpace(draft.CustomerName),
		EmployeeID:    draft.EmployeeID,
		OrderType:     draft.OrderType,
		Timestamp:     time.Now().UTC(),
	}
	if sale.PaymentMethod == "" {
		sale.PaymentMethod = "cash"
	}
	if sale.OrderType == "" {
		sale.OrderType = "dine_in"
	}

	for _, line := range sale.Items {
		item, err := s.inventory.GetByProductID(line.ProductID)
		if err != nil {
			if err == repo.ErrInventoryItemNotFound {
				continue
			}
			return models.Sale{}, err
		}
		item.Quantity -= line.Quantity
		if item.Quantity < 0 {
			item.Quantity = 0
		}
		if _, err := s.inventory.Update(item); err != nil {
			return models.Sale{}, err
		}
	}

	if sale.CustomerName != "" {
		if err := s.creditCustomer(sale.CustomerName, sale.TotalAmount); err != nil {
			return models.Sale{}, err
		}
	}

	return s.sales.Create(sale)
}

func (s *Service) creditCustomer(name string, amount decimal.Decimal) error {
	customer, err := s.customers.GetByName(name)
	if err != nil {
		if err == repo.ErrCustomerNotFound {
			// walk-in under an unregistered name, nothing to credit
			return nil
		}
		return err
	}
	customer.TotalOrders++
	customer.TotalSpent = customer.TotalSpent.Add(amount)
	customer.LoyaltyPoints += int(amount.IntPart())
	_, err = s.customers.Update(customer)
	return err
}

// RecentSales returns up to limit sales, newest first.
func (s *Service) RecentSales(limit int) ([]models.Sale, error) {
	return s.sales.GetRecent(limit)
}

// DailySales summarizes today's transactions with the top sellers.
func (s *Service) DailySales(dayStart, dayEnd time.Time) (report.DailySales, error) {
	sales, err := s.sales.GetBetween(dayStart, dayEnd)
	if err != nil {
		return report.DailySales{}, err
	}
	products, err := s.products.GetAll()
	if err != nil {
		return report.DailySales{}, err
	}
	return report.Daily(sales, report.ProductsByID(products), dayStart, dayEnd), nil
}

// CategoryBreakdown returns today's per-category revenue and volume.
func (s *Service) CategoryBreakdown(dayStart, dayEnd time.Time) (map[models.Category]report.CategoryStats, error) {
	sales, err := s.sales.GetBetween(dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	products, err := s.products.GetAll()
	if err != nil {
		return nil, err
	}
	return report.ByCategory(sales, report.ProductsByID(products), dayStart, dayEnd), nil
}

// Package backoffice is the single entry point the transport layer calls.
// It fetches snapshots from the repositories, hands them to the report
// package, and validates write payloads before anything is persisted.
package backoffice

import (
	"time"

	"github.com/marqedonuts/backoffice/internal/models"
	"github.com/marqedonuts/backoffice/internal/repo"
	"github.com/marqedonuts/backoffice/internal/report"
	"github.com/marqedonuts/backoffice/internal/stock"
)

// Service exposes the back-office read and write operations as plain data
// in, plain data out. It holds no mutable state of its own; every read is
// recomputed from a fresh repository snapshot.
type Service struct {
	products  repo.ProductRepository
	inventory repo.InventoryRepository
	sales     repo.SaleRepository
	employees repo.EmployeeRepository
	customers repo.CustomerRepository
}

func NewService(
	products repo.ProductRepository,
	inventory repo.InventoryRepository,
	sales repo.SaleRepository,
	employees repo.EmployeeRepository,
	customers repo.CustomerRepository,
) *Service {
	return &Service{
		products:  products,
		inventory: inventory,
		sales:     sales,
		employees: employees,
		customers: customers,
	}
}

// Overview computes the dashboard summary for the day bounded by
// [dayStart, dayEnd).
func (s *Service) Overview(dayStart, dayEnd time.Time) (report.Summary, error) {
	snap := report.Snapshot{}
	var err error

	if snap.Products, err = s.products.GetAll(); err != nil {
		return report.Summary{}, err
	}
	if snap.Inventory, err = s.inventory.GetAll(); err != nil {
		return report.Summary{}, err
	}
	if snap.Sales, err = s.sales.GetBetween(dayStart, dayEnd); err != nil {
		return report.Summary{}, err
	}
	if snap.Customers, err = s.customers.GetAll(); err != nil {
		return report.Summary{}, err
	}
	if snap.Employees, err = s.employees.GetAll(); err != nil {
		return report.Summary{}, err
	}

	return report.Overview(snap, dayStart, dayEnd), nil
}

// LowStockAlerts returns the restock attention list in inventory order.
func (s *Service) LowStockAlerts() ([]report.Alert, error) {
	items, err := s.inventory.GetAll()
	if err != nil {
		return nil, err
	}
	products, err := s.products.GetAll()
	if err != nil {
		return nil, err
	}
	return report.LowStockAlerts(items, report.ProductsByID(products)), nil
}

// ListProducts returns the catalog, optionally narrowed to one category.
// An empty or "all" filter returns everything in insertion order.
func (s *Service) ListProducts(category string) ([]models.Product, error) {
	products, err := s.products.GetAll()
	if err != nil {
		return nil, err
	}
	if category == "" || category == "all" {
		return products, nil
	}

	want := models.ParseCategory(category)
	filtered := []models.Product{}
	for _, p := range products {
		if p.Category == want {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// SearchProducts runs the repository-side product search with
// pagination.
func (s *Service) SearchProducts(filter repo.ProductFilter) ([]models.Product, int, error) {
	return s.products.Filter(filter)
}

// GetProduct returns one product by id.
func (s *Service) GetProduct(id int) (models.Product, error) {
	return s.products.GetByID(id)
}

// AddProduct validates and persists a new product and seeds an empty
// inventory row for it. On validation failure nothing is written.
func (s *Service) AddProduct(draft ProductDraft) (models.Product, error) {
	product, verr := validateProductDraft(draft)
	if verr != nil {
		return models.Product{}, verr
	}

	now := time.Now().UTC()
	product.CreatedAt = now
	product.UpdatedAt = now

	created, err := s.products.Create(product)
	if err != nil {
		return models.Product{}, err
	}

	_, err = s.inventory.Create(models.InventoryItem{
		ProductID:     created.ID,
		Quantity:      0,
		MinThreshold:  10,
		MaxCapacity:   100,
		LastRestocked: now,
	})
	return created, err
}

// UpdateProduct validates and replaces an existing product.
func (s *Service) UpdateProduct(id int, draft ProductDraft) (models.Product, error) {
	product, verr := validateProductDraft(draft)
	if verr != nil {
		return models.Product{}, verr
	}

	existing, err := s.products.GetByID(id)
	if err != nil {
		return models.Product{}, err
	}
	product.ID = existing.ID
	product.CreatedAt = existing.CreatedAt
	product.UpdatedAt = time.Now().UTC()
	return s.products.Update(product)
}

// DeleteProduct removes a product and its inventory row. A missing
// inventory row is not an error; some legacy products never had one.
func (s *Service) DeleteProduct(id int) error {
	if err := s.products.Delete(id); err != nil {
		return err
	}
	if err := s.inventory.DeleteByProductID(id); err != nil && err != repo.ErrInventoryItemNotFound {
		return err
	}
	return nil
}

// InventoryView is one inventory row joined to its product for display.
// A dangling product reference keeps the row and falls back to the
// placeholder name.
type InventoryView struct {
	Item        models.InventoryItem
	ProductName string
	Status      stock.Status
}

// ListInventory returns all inventory rows joined to their products, in
// insertion order, with status derived at read time.
func (s *Service) ListInventory() ([]InventoryView, error) {
	items, err := s.inventory.GetAll()
	if err != nil {
		return nil, err
	}
	products, err := s.products.GetAll()
	if err != nil {
		return nil, err
	}
	byID := report.ProductsByID(products)

	views := make([]InventoryView, len(items))
	for i, item := range items {
		name := report.UnknownProductName
		if p, ok := byID[item.ProductID]; ok {
			name = p.Name
		}
		views[i] = InventoryView{
			Item:        item,
			ProductName: name,
			Status:      stock.Classify(item.Quantity, item.MinThreshold),
		}
	}
	return views, nil
}

// GetInventoryItem returns the inventory row for one product.
func (s *Service) GetInventoryItem(productID int) (models.InventoryItem, error) {
	return s.inventory.GetByProductID(productID)
}

// InventoryUpdate carries the fields of an inventory adjustment; nil
// fields are left unchanged.
type InventoryUpdate struct {
	Quantity     *int `json:"quantity"`
	MinThreshold *int `json:"min_threshold"`
	MaxCapacity  *int `json:"max_capacity"`
}

// UpdateInventory applies a partial inventory update. A quantity change
// counts as a restock event and stamps LastRestocked.
func (s *Service) UpdateInventory(productID int, upd InventoryUpdate) (models.InventoryItem, error) {
	errs := []FieldError{}
	if upd.Quantity != nil && *upd.Quantity < 0 {
		errs = append(errs, FieldError{Field: "quantity", Description: "quantity cannot be negative"})
	}
	if upd.MinThreshold != nil && *upd.MinThreshold < 0 {
		errs = append(errs, FieldError{Field: "min_threshold", Description: "min_threshold cannot be negative"})
	}
	if len(errs) > 0 {
		return models.InventoryItem{}, &ValidationError{Fields: errs}
	}

	item, err := s.inventory.GetByProductID(productID)
	if err != nil {
		return models.InventoryItem{}, err
	}

	if upd.Quantity != nil {
		item.Quantity = *upd.Quantity
		item.LastRestocked = time.Now().UTC()
	}
	if upd.MinThreshold != nil {
		item.MinThreshold = *upd.MinThreshold
	}
	if upd.MaxCapacity != nil {
		item.MaxCapacity = *upd.MaxCapacity
	}
	return s.inventory.Update(item)
}

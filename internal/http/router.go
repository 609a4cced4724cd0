package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/marqedonuts/backoffice/internal/http/handlers"
)

// NewRouter wires every endpoint under /api. Write endpoints sit behind
// the auth middleware; everything passes the per-IP rate limiter.
func NewRouter(corsOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))
	r.Use(RateLimitMiddleware)

	r.Route("/api", func(r chi.Router) {
		r.Post("/register", handlers.RegisterHandler)
		r.Post("/login", handlers.LoginHandler)
		r.Post("/refresh", handlers.RefreshHandler)

		r.Get("/dashboard/overview", handlers.GetDashboardOverviewHandler)

		r.Get("/products", handlers.GetProductsHandler)
		r.Get("/products/search", handlers.FilterProductsHandler)
		r.Get("/products/{id}", handlers.GetProductByIDHandler)
		r.With(AuthMiddleware).Post("/products", handlers.CreateProductHandler)
		r.With(AuthMiddleware).Put("/products/{id}", handlers.UpdateProductHandler)
		r.With(AuthMiddleware).Delete("/products/{id}", handlers.DeleteProductHandler)
		r.With(AuthMiddleware).Post("/products/import", handlers.ImportProductsHandler)

		r.Get("/inventory", handlers.GetInventoryHandler)
		r.Get("/inventory/alerts/low-stock", handlers.GetLowStockAlertsHandler)
		r.Get("/inventory/{productId}", handlers.GetInventoryItemHandler)
		r.With(AuthMiddleware).Put("/inventory/{productId}", handlers.UpdateInventoryHandler)

		r.Get("/sales", handlers.GetSalesHandler)
		r.Get("/sales/export", handlers.ExportSalesCSVHandler)
		r.Get("/sales/analytics/daily", handlers.GetDailyAnalyticsHandler)
		r.Get("/sales/analytics/category", handlers.GetCategoryAnalyticsHandler)
		r.With(AuthMiddleware).Post("/sales", handlers.CreateSaleHandler)

		r.Get("/employees", handlers.GetEmployeesHandler)
		r.With(AuthMiddleware).Post("/employees", handlers.CreateEmployeeHandler)

		r.Get("/customers", handlers.GetCustomersHandler)
		r.With(AuthMiddleware).Post("/customers", handlers.CreateCustomerHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	return r
}

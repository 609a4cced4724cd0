package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/marqedonuts/backoffice/internal/backoffice"
	api "github.com/marqedonuts/backoffice/internal/http"
	handler "github.com/marqedonuts/backoffice/internal/http/handlers"
	"github.com/marqedonuts/backoffice/internal/models"
	"github.com/marqedonuts/backoffice/internal/repo"
)

var (
	token  string
	router http.Handler

	productRepo   *repo.InMemoryProductRepository
	inventoryRepo *repo.InMemoryInventoryRepository
	saleRepo      *repo.InMemorySaleRepository
	employeeRepo  *repo.InMemoryEmployeeRepository
	customerRepo  *repo.InMemoryCustomerRepository
)

func init() {
	setupTestRepos("secret123")
	router = api.NewRouter([]string{"*"})

	var err error
	token, err = generateToken(router, "admin", "secret123")
	if err != nil {
		panic(fmt.Sprintf("error generating token: %v", err))
	}
}

func setupTestRepos(password string) {
	productRepo = repo.NewInMemoryProductRepository()
	inventoryRepo = repo.NewInMemoryInventoryRepository()
	saleRepo = repo.NewInMemorySaleRepository()
	employeeRepo = repo.NewInMemoryEmployeeRepository()
	customerRepo = repo.NewInMemoryCustomerRepository()

	handler.SetService(backoffice.NewService(
		productRepo, inventoryRepo, saleRepo, employeeRepo, customerRepo,
	))

	userRepo := repo.NewInMemoryUserRepository()
	handler.SetUserRepo(userRepo)

	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	userRepo.CreateUser(models.User{
		Username:     "admin",
		PasswordHash: string(hash),
		Role:         "manager",
	})
}

func clearAllRecords() {
	productRepo.Clear()
	inventoryRepo.Clear()
	saleRepo.Clear()
	employeeRepo.Clear()
	customerRepo.Clear()
}

// requestSeq spreads test requests over distinct client addresses so the
// per-IP rate limiter never throttles a suite run.
var requestSeq atomic.Int64

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	seq := requestSeq.Add(1)
	req.RemoteAddr = fmt.Sprintf("10.0.%d.%d:1234", (seq/250)%250, seq%250+1)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func generateToken(r http.Handler, username, password string) (string, error) {
	payload := handler.CredentialsRequest{Username: username, Password: password}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewReader(body))
	w := serve(r, req)

	var resp handler.LoginResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.Token, nil
}

func authorizedRequest(method, target string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func createProduct(r http.Handler, draft backoffice.ProductDraft) *httptest.ResponseRecorder {
	body, _ := json.Marshal(draft)
	return serve(r, authorizedRequest(http.MethodPost, "/api/products", bytes.NewReader(body)))
}

func mustCreateProduct(r http.Handler, draft backoffice.ProductDraft) handler.ProductResponse {
	w := createProduct(r, draft)
	if w.Code != http.StatusCreated {
		panic(fmt.Sprintf("product setup failed with status %d: %s", w.Code, w.Body.String()))
	}
	var resp handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		panic(fmt.Sprintf("product setup decoding failed: %v", err))
	}
	return resp
}

func updateInventory(r http.Handler, productID int, upd backoffice.InventoryUpdate) *httptest.ResponseRecorder {
	body, _ := json.Marshal(upd)
	target := fmt.Sprintf("/api/inventory/%d", productID)
	return serve(r, authorizedRequest(http.MethodPut, target, bytes.NewReader(body)))
}

func recordSale(r http.Handler, draft backoffice.SaleDraft) *httptest.ResponseRecorder {
	body, _ := json.Marshal(draft)
	return serve(r, authorizedRequest(http.MethodPost, "/api/sales", bytes.NewReader(body)))
}

func intPtr(v int) *int { return &v }

func itoa(v int) string { return strconv.Itoa(v) }

func decimalFromString(t interface{ Fatalf(string, ...any) }, s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return d
}

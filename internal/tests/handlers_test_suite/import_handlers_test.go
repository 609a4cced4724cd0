package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	handler "github.com/marqedonuts/backoffice/internal/http/handlers"
)

func importCSV(t *testing.T, csvBody, query string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "products.csv")
	if err != nil {
		t.Fatalf("creating form file: %v", err)
	}
	if _, err := fw.Write([]byte(csvBody)); err != nil {
		t.Fatalf("writing form file: %v", err)
	}
	mw.Close()

	req := authorizedRequest(http.MethodPost, "/api/products/import"+query, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return serve(router, req)
}

func TestImportProductsHandler(t *testing.T) {
	t.Cleanup(clearAllRecords)

	csvBody := "name,category,price,cost,prep_time\n" +
		"Glazed Donut,donuts,1.50,0.35,15\n" +
		"Breakfast Taco,tacos,3.00,1.10,10\n"

	w := importCSV(t, csvBody, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp handler.ImportProductsResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.ImportedProductsCount != 2 {
		t.Errorf("expected 2 imported, got %d", resp.ImportedProductsCount)
	}
	if len(resp.Errors) != 0 {
		t.Errorf("expected no errors, got %+v", resp.Errors)
	}

	products, _ := productRepo.GetAll()
	if len(products) != 2 {
		t.Errorf("expected 2 products persisted, got %d", len(products))
	}
}

func TestImportProductsHandler_RowErrors(t *testing.T) {
	t.Cleanup(clearAllRecords)

	csvBody := "name,category,price,cost\n" +
		"Glazed Donut,donuts,1.50,0.35\n" +
		",donuts,2.00,0.40\n" + // missing name
		"Boston Cream,donuts,free,0.40\n" // bad price

	w := importCSV(t, csvBody, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp handler.ImportProductsResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.ImportedProductsCount != 1 {
		t.Errorf("expected 1 imported, got %d", resp.ImportedProductsCount)
	}
	if len(resp.Errors) != 2 {
		t.Errorf("expected 2 row errors, got %+v", resp.Errors)
	}
}

func TestImportProductsHandler_SkipAndUpdateModes(t *testing.T) {
	t.Cleanup(clearAllRecords)

	mustCreateProduct(router, glazedDraft())

	csvBody := "name,category,price,cost\nGlazed Donut,donuts,2.00,0.50\n"

	w := importCSV(t, csvBody, "")
	var resp handler.ImportProductsResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.ImportedProductsCount != 0 || len(resp.Errors) != 1 {
		t.Errorf("skip mode should reject the duplicate, got %+v", resp)
	}

	w = importCSV(t, csvBody, "?mode=update")
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.ImportedProductsCount != 1 {
		t.Errorf("update mode should overwrite the duplicate, got %+v", resp)
	}

	products, _ := productRepo.GetAll()
	if len(products) != 1 {
		t.Fatalf("expected 1 product after update, got %d", len(products))
	}
	if !products[0].Price.Equal(decimalFromString(t, "2.00")) {
		t.Errorf("expected updated price 2.00, got %s", products[0].Price)
	}
}

func TestImportProductsHandler_MissingFile(t *testing.T) {
	t.Cleanup(clearAllRecords)

	req := authorizedRequest(http.MethodPost, "/api/products/import", nil)
	w := serve(router, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 without a file, got %d", w.Code)
	}
}

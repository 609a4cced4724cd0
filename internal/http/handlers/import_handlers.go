package handlers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/marqedonuts/backoffice/internal/backoffice"
	"github.com/marqedonuts/backoffice/internal/models"
	"github.com/marqedonuts/backoffice/internal/repo"
)

type csvProductRow struct {
	Name        string
	Category    string
	Price       string
	Cost        string
	Description string
	Ingredients string
	PrepTime    string
}

func parseProductsCSV(file multipart.File) ([]csvProductRow, error) {
	reader := csv.NewReader(file)
	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("invalid CSV header")
	}

	index := map[string]int{}
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := index["name"]; !ok {
		return nil, fmt.Errorf("missing 'name' column")
	}

	column := func(record []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return record[i]
	}

	var rows []csvProductRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("CSV read error: %v", err)
		}

		rows = append(rows, csvProductRow{
			Name:        column(record, "name"),
			Category:    column(record, "category"),
			Price:       column(record, "price"),
			Cost:        column(record, "cost"),
			Description: column(record, "description"),
			Ingredients: column(record, "ingredients"),
			PrepTime:    column(record, "prep_time"),
		})
	}
	return rows, nil
}

func draftFromRow(row csvProductRow) backoffice.ProductDraft {
	var ingredients []string
	for _, ing := range strings.Split(row.Ingredients, ";") {
		if strings.TrimSpace(ing) != "" {
			ingredients = append(ingredients, strings.TrimSpace(ing))
		}
	}
	return backoffice.ProductDraft{
		Name:        strings.TrimSpace(row.Name),
		Category:    row.Category,
		Price:       row.Price,
		Cost:        row.Cost,
		Description: row.Description,
		Ingredients: ingredients,
		PrepTime:    row.PrepTime,
	}
}

func findProductByName(name string) (models.Product, error) {
	matches, _, err := svc.SearchProducts(repo.ProductFilter{Name: name})
	if err != nil {
		return models.Product{}, err
	}
	for _, p := range matches {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return models.Product{}, repo.ErrProductNotFound
}

// ImportProductsHandler godoc
// @Summary Import products via CSV
// @Tags import
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file with name, category, price, cost, description, ingredients (semicolon separated) and prep_time columns"
// @Param mode query string false "Import mode (skip|update)"
// @Success 200 {object} ImportProductsResult
// @Failure 400 {string} string "Invalid file"
// @Router /api/products/import [post]
// @Security BearerAuth
func ImportProductsHandler(w http.ResponseWriter, r *http.Request) {
	mode := strings.ToLower(r.URL.Query().Get("mode"))
	if mode != "update" {
		mode = "skip" // default
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	rows, err := parseProductsCSV(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	imported := 0
	errorsList := []backoffice.FieldError{}

	for i, row := range rows {
		rowNum := i + 2 // header is row 1
		draft := draftFromRow(row)

		_, err := svc.AddProduct(draft)
		if err == nil {
			imported++
			continue
		}

		var verr *backoffice.ValidationError
		if errors.As(err, &verr) {
			for _, fe := range verr.Fields {
				errorsList = append(errorsList, backoffice.FieldError{
					Field:       fe.Field,
					Description: fmt.Sprintf("row %d: %s", rowNum, fe.Description),
				})
			}
			continue
		}

		if errors.Is(err, repo.ErrDuplicatedValueUnique) {
			if mode == "skip" {
				errorsList = append(errorsList, backoffice.FieldError{
					Field:       "name",
					Description: fmt.Sprintf("row %d: product '%s' already exists", rowNum, draft.Name),
				})
				continue
			}
			existing, findErr := findProductByName(draft.Name)
			if findErr != nil {
				errorsList = append(errorsList, backoffice.FieldError{
					Description: fmt.Sprintf("row %d: failed to update '%s'", rowNum, draft.Name),
				})
				continue
			}
			if _, err := svc.UpdateProduct(existing.ID, draft); err != nil {
				errorsList = append(errorsList, backoffice.FieldError{
					Description: fmt.Sprintf("row %d: failed to update '%s'", rowNum, draft.Name),
				})
				continue
			}
			imported++
			continue
		}

		errorsList = append(errorsList, backoffice.FieldError{
			Description: fmt.Sprintf("row %d: %v", rowNum, err),
		})
	}

	if imported > 0 {
		invalidateOverview()
	}

	writeJSON(w, http.StatusOK, ImportProductsResult{
		ImportedProductsCount: imported,
		Errors:                errorsList,
	})
}

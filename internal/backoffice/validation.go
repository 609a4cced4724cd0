package backoffice

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/marqedonuts/backoffice/internal/models"
)

// FieldError names one offending field of a rejected payload.
type FieldError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

// ValidationError is returned when a write payload is malformed. Nothing
// is persisted when it is returned.
type ValidationError struct {
	Fields []FieldError `json:"errors"`
}

func (e *ValidationError) Error() string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = f.Field
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(names, ", "))
}

// ProductDraft is an unvalidated new-product payload. Numeric fields
// arrive as text straight from the dashboard form.
type ProductDraft struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Price       string   `json:"price"`
	Cost        string   `json:"cost"`
	Description string   `json:"description"`
	Ingredients []string `json:"ingredients"`
	PrepTime    string   `json:"prep_time"`
	IsAvailable *bool    `json:"is_available"`
}

// validateProductDraft normalizes a draft into a Product or reports every
// offending field at once. Leniency is deliberate where the old system
// was lenient: an unparsable or negative prep time becomes 0, an unknown
// category becomes "other", blank ingredient entries are dropped. A
// negative margin (cost above price) is allowed.
func validateProductDraft(draft ProductDraft) (models.Product, *ValidationError) {
	errs := []FieldError{}

	name := strings.TrimSpace(draft.Name)
	if name == "" {
		errs = append(errs, FieldError{Field: "name", Description: "name is required"})
	}

	price, err := decimal.NewFromString(strings.TrimSpace(draft.Price))
	if err != nil {
		errs = append(errs, FieldError{Field: "price", Description: "price must be a number"})
	} else if price.IsNegative() {
		errs = append(errs, FieldError{Field: "price", Description: "price cannot be negative"})
	}

	cost, err := decimal.NewFromString(strings.TrimSpace(draft.Cost))
	if err != nil {
		errs = append(errs, FieldError{Field: "cost", Description: "cost must be a number"})
	} else if cost.IsNegative() {
		errs = append(errs, FieldError{Field: "cost", Description: "cost cannot be negative"})
	}

	if len(errs) > 0 {
		return models.Product{}, &ValidationError{Fields: errs}
	}

	prepTime, err := strconv.Atoi(strings.TrimSpace(draft.PrepTime))
	if err != nil || prepTime < 0 {
		prepTime = 0
	}

	available := true
	if draft.IsAvailable != nil {
		available = *draft.IsAvailable
	}

	return models.Product{
		Name:        name,
		Category:    models.ParseCategory(strings.TrimSpace(draft.Category)),
		Price:       price,
		Cost:        cost,
		Description: strings.TrimSpace(draft.Description),
		Ingredients: cleanIngredients(draft.Ingredients),
		PrepTime:    prepTime,
		IsAvailable: available,
	}, nil
}

func cleanIngredients(raw []string) []string {
	cleaned := []string{}
	for _, ing := range raw {
		if trimmed := strings.TrimSpace(ing); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	return cleaned
}

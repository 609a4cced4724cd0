package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category is the menu section a product belongs to. Free-form category
// text from the old system is folded into a fixed set; anything the shop
// has not named maps to CategoryOther.
type Category string

const (
	CategoryDonuts     Category = "donuts"
	CategoryTacos      Category = "tacos"
	CategoryKolaches   Category = "kolaches"
	CategoryCroissants Category = "croissants"
	CategoryCoffee     Category = "coffee"
	CategoryBeverages  Category = "beverages"
	CategoryOther      Category = "other"
)

var knownCategories = map[Category]bool{
	CategoryDonuts:     true,
	CategoryTacos:      true,
	CategoryKolaches:   true,
	CategoryCroissants: true,
	CategoryCoffee:     true,
	CategoryBeverages:  true,
	CategoryOther:      true,
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	return knownCategories[c]
}

// ParseCategory normalizes free-form category text. Unknown values map to
// CategoryOther rather than failing.
func ParseCategory(s string) Category {
	c := Category(s)
	if c.Valid() {
		return c
	}
	return CategoryOther
}

// Product represents an item on the shop's menu.
type Product struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Category    Category        `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Cost        decimal.Decimal `json:"cost"`
	Description string          `json:"description,omitempty"`
	Ingredients []string        `json:"ingredients"`
	PrepTime    int             `json:"prep_time"` // minutes
	IsAvailable bool            `json:"is_available"`
	CreatedAt   time.Time       `json:"created_at,omitempty"`
	UpdatedAt   time.Time       `json:"updated_at,omitempty"`
}

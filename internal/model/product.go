package model

import "github.com/shopspring/decimal"

// Product represents a catalogue product. For per-weight products Price is
// a rate per kilogram rather than a unit price.
type Product struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Price            decimal.Decimal `json:"price"`
	Code             string          `json:"code,omitempty"`
	CategoryID       string          `json:"categoryId"`
	PerWeight        bool            `json:"perWeight"`
	NeedsPreparation bool            `json:"needsPreparation"`
	Active           bool            `json:"active"`
}

// Category represents a product category.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// DefaultCategoryIcon is filled in when the gateway returns no icon glyph.
const DefaultCategoryIcon = "📦"

// ProductUpdate carries the fields of a product edit; nil means leave
// unchanged.
type ProductUpdate struct {
	Name             *string          `json:"name,omitempty"`
	Price            *decimal.Decimal `json:"price,omitempty"`
	CategoryID       *string          `json:"categoryId,omitempty"`
	PerWeight        *bool            `json:"perWeight,omitempty"`
	NeedsPreparation *bool            `json:"needsPreparation,omitempty"`
}

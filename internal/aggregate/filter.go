package aggregate

import (
	"comanda/internal/ident"
	"comanda/internal/model"
)

// ByCategory filters the product catalogue by a selected category using
// normalized identifier comparison, so a hyphenated selection still
// matches a bare category id. An empty selection returns the whole
// catalogue. Source order is preserved.
func ByCategory(products []model.Product, categoryID string) []model.Product {
	if ident.IsZero(categoryID) {
		out := make([]model.Product, len(products))
		copy(out, products)
		return out
	}
	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if ident.Equal(p.CategoryID, categoryID) {
			out = append(out, p)
		}
	}
	return out
}

// ActiveOnly excludes soft-deleted products from the ordering views.
func ActiveOnly(products []model.Product) []model.Product {
	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if p.Active {
			out = append(out, p)
		}
	}
	return out
}

// CategoryFor resolves a product's category against the category list,
// returning nil when nothing matches; callers render a "no category"
// fallback rather than treating that as an error.
func CategoryFor(p model.Product, categories []model.Category) *model.Category {
	for i := range categories {
		if ident.Equal(categories[i].ID, p.CategoryID) {
			c := categories[i]
			return &c
		}
	}
	return nil
}

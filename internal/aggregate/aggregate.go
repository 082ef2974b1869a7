// Package aggregate derives the per-screen views from normalized gateway
// data: the deduplicated per-tab product listing with its total, table
// occupancy, and catalogue filtering. Every function is pure; inputs are
// never mutated and malformed data degrades to defaults instead of
// failing.
package aggregate

import (
	"sort"

	"github.com/shopspring/decimal"

	"comanda/internal/ident"
	"comanda/internal/model"
)

// Result is the outcome of aggregating one tab's orders.
type Result struct {
	// Lines is the deduplicated product listing, in first-seen order.
	Lines []model.TabLine
	// TotalPrice is the sum of every line's total.
	TotalPrice decimal.Decimal
	// Incomplete reports lines whose product snapshot was missing. Such
	// lines still contribute to Lines with fallback fields.
	Incomplete []*model.IncompleteLineError
}

// Orders flattens a tab's orders into a single deduplicated product
// listing plus a total price. Orders whose owning-tab reference does not
// normalize equal to tabID are excluded entirely; the survivors are
// walked newest first. Lines for the same product are collapsed into one
// entry with summed quantity and total, except per-weight products, where
// each weighing stays its own entry.
func Orders(tabID string, orders []model.Order) Result {
	var res Result
	res.TotalPrice = decimal.Zero

	owned := filterOwned(tabID, orders)
	sortNewestFirst(owned)

	for _, order := range owned {
		for _, line := range order.Lines {
			if line.ProductName == "" {
				res.Incomplete = append(res.Incomplete, &model.IncompleteLineError{
					OrderID:   order.ID,
					ProductID: line.ProductID,
				})
			}

			if i := findMergeable(res.Lines, line.ProductID); i >= 0 {
				res.Lines[i].Quantity = res.Lines[i].Quantity.Add(line.Quantity)
				res.Lines[i].TotalPrice = res.Lines[i].TotalPrice.Add(line.TotalPrice)
				continue
			}
			res.Lines = append(res.Lines, model.TabLine{
				OrderLine: line,
				Status:    model.LinePending,
			})
		}
	}

	for _, line := range res.Lines {
		res.TotalPrice = res.TotalPrice.Add(line.TotalPrice)
	}
	return res
}

// findMergeable returns the index of the accumulator entry a new line for
// productID should merge into, or -1. Per-weight entries never absorb
// further lines: every weighing is an independent row.
func findMergeable(lines []model.TabLine, productID string) int {
	for i, l := range lines {
		if ident.Equal(l.ProductID, productID) && !l.PerWeight {
			return i
		}
	}
	return -1
}

// filterOwned keeps only orders whose owning-tab reference matches tabID
// after normalization. Orders carrying neither an id nor a tab reference
// are dropped outright; otherwise two absent identifiers would compare
// equal and stale gateway rows would leak into every tab.
func filterOwned(tabID string, orders []model.Order) []model.Order {
	owned := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		if ident.IsZero(o.ID) && ident.IsZero(o.TabID) {
			continue
		}
		if ident.Equal(o.TabID, tabID) {
			owned = append(owned, o)
		}
	}
	return owned
}

// sortNewestFirst orders by creation time, descending.
func sortNewestFirst(orders []model.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
}

// BuildTab fills a tab's derived fields from its raw orders: the
// deduplicated listing, the total price, and the filtered order history,
// newest first. The input is not mutated.
func BuildTab(tab model.Tab) (model.Tab, []*model.IncompleteLineError) {
	res := Orders(tab.ID, tab.Orders)
	tab.Lines = res.Lines
	tab.TotalPrice = res.TotalPrice

	owned := filterOwned(tab.ID, tab.Orders)
	sortNewestFirst(owned)
	tab.Orders = owned
	return tab, res.Incomplete
}

// SortTabsNewestFirst orders tabs by creation time, descending, in place.
func SortTabsNewestFirst(tabs []model.Tab) {
	sort.SliceStable(tabs, func(i, j int) bool {
		return tabs[i].CreatedAt.After(tabs[j].CreatedAt)
	})
}

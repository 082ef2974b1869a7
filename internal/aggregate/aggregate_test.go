package aggregate

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"comanda/internal/model"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func line(productID, name string, qty, unit, total string) model.OrderLine {
	return model.OrderLine{
		ProductID:   productID,
		ProductName: name,
		Quantity:    dec(qty),
		UnitPrice:   dec(unit),
		TotalPrice:  dec(total),
	}
}

func TestOrders_MergesRepeatedProductAcrossOrders(t *testing.T) {
	tabID := "tab-1"
	orders := []model.Order{
		{
			ID:    "order-a",
			TabID: tabID,
			Lines: []model.OrderLine{line("p1", "Refrigerante", "2", "10", "20")},
		},
		{
			ID:    "order-b",
			TabID: tabID,
			Lines: []model.OrderLine{line("p1", "Refrigerante", "1", "10", "10")},
		},
	}

	res := Orders(tabID, orders)

	require.Len(t, res.Lines, 1)
	assert.Equal(t, "p1", res.Lines[0].ProductID)
	assert.True(t, res.Lines[0].Quantity.Equal(dec("3")), "quantity %s", res.Lines[0].Quantity)
	assert.True(t, res.Lines[0].TotalPrice.Equal(dec("30")))
	assert.True(t, res.TotalPrice.Equal(dec("30")))
	assert.Equal(t, model.LinePending, res.Lines[0].Status)
	assert.Empty(t, res.Incomplete)
}

func TestOrders_PerWeightLinesNeverMerge(t *testing.T) {
	weighed := line("p2", "Picanha", "0.450", "20", "9")
	weighed.PerWeight = true
	second := line("p2", "Picanha", "0.300", "20", "6")
	second.PerWeight = true

	res := Orders("tab-1", []model.Order{
		{ID: "order-a", TabID: "tab-1", Lines: []model.OrderLine{weighed, second}},
	})

	require.Len(t, res.Lines, 2)
	assert.True(t, res.Lines[0].Quantity.Equal(dec("0.450")))
	assert.True(t, res.Lines[1].Quantity.Equal(dec("0.300")))
	assert.True(t, res.TotalPrice.Equal(dec("15")))
}

func TestOrders_ExcludesStaleCrossReferences(t *testing.T) {
	res := Orders("tab-1", []model.Order{
		{ID: "order-a", TabID: "tab-1", Lines: []model.OrderLine{line("p1", "Suco", "1", "8", "8")}},
		{ID: "order-x", TabID: "tab-other", Lines: []model.OrderLine{line("p9", "Vinho", "1", "35", "35")}},
	})

	require.Len(t, res.Lines, 1)
	assert.Equal(t, "p1", res.Lines[0].ProductID)
	assert.True(t, res.TotalPrice.Equal(dec("8")))
}

func TestOrders_NormalizedTabReferenceMatches(t *testing.T) {
	res := Orders("2455e6c1-43b2-4a00-0000-000000000000", []model.Order{
		{
			ID:    "order-a",
			TabID: "2455E6C143B24A000000000000000000",
			Lines: []model.OrderLine{line("p1", "Suco", "1", "8", "8")},
		},
	})
	require.Len(t, res.Lines, 1)
}

func TestOrders_DropsOrdersWithNoIdentifiersAtAll(t *testing.T) {
	// An order with neither an id nor a tab reference would otherwise
	// match any tab whose id is also absent.
	res := Orders("", []model.Order{
		{Lines: []model.OrderLine{line("p1", "Suco", "1", "8", "8")}},
	})
	assert.Empty(t, res.Lines)
	assert.True(t, res.TotalPrice.Equal(decimal.Zero))
}

func TestOrders_NilAndEmptyInputs(t *testing.T) {
	res := Orders("tab-1", nil)
	assert.Empty(t, res.Lines)
	assert.True(t, res.TotalPrice.Equal(decimal.Zero))

	res = Orders("tab-1", []model.Order{{ID: "order-a", TabID: "tab-1", Lines: nil}})
	assert.Empty(t, res.Lines)
}

func TestOrders_ReportsIncompleteLines(t *testing.T) {
	missing := model.OrderLine{ProductID: "p3", Quantity: dec("1"), TotalPrice: dec("5")}

	res := Orders("tab-1", []model.Order{
		{ID: "order-a", TabID: "tab-1", Lines: []model.OrderLine{missing}},
	})

	// The line still contributes with fallback fields.
	require.Len(t, res.Lines, 1)
	assert.True(t, res.TotalPrice.Equal(dec("5")))

	require.Len(t, res.Incomplete, 1)
	assert.Equal(t, "order-a", res.Incomplete[0].OrderID)
	assert.Equal(t, "p3", res.Incomplete[0].ProductID)
	assert.ErrorIs(t, res.Incomplete[0], model.ErrIncompleteLine)
}

func TestOrders_FirstSeenOrderIsStable(t *testing.T) {
	now := time.Now()
	orders := []model.Order{
		{
			ID: "order-new", TabID: "tab-1", CreatedAt: now,
			Lines: []model.OrderLine{
				line("p2", "Pudim", "1", "10", "10"),
				line("p1", "Café", "1", "4", "4"),
			},
		},
		{
			ID: "order-old", TabID: "tab-1", CreatedAt: now.Add(-time.Hour),
			Lines: []model.OrderLine{line("p3", "Coxinha", "2", "6", "12")},
		},
	}

	res := Orders("tab-1", orders)

	// Newest order is walked first, so its products come first.
	require.Len(t, res.Lines, 3)
	assert.Equal(t, "p2", res.Lines[0].ProductID)
	assert.Equal(t, "p1", res.Lines[1].ProductID)
	assert.Equal(t, "p3", res.Lines[2].ProductID)
}

func TestOrders_TotalEqualsSumOfOwnedLineTotals(t *testing.T) {
	orders := []model.Order{
		{ID: "a", TabID: "tab-1", Lines: []model.OrderLine{
			line("p1", "A", "1", "10", "10"),
			line("p2", "B", "2", "7", "14"),
		}},
		{ID: "b", TabID: "tab-1", Lines: []model.OrderLine{
			line("p1", "A", "3", "10", "30"),
		}},
		{ID: "c", TabID: "tab-2", Lines: []model.OrderLine{
			line("p9", "Z", "1", "99", "99"),
		}},
	}

	res := Orders("tab-1", orders)
	assert.True(t, res.TotalPrice.Equal(dec("54")), "total %s", res.TotalPrice)
}

func TestOrders_Idempotent(t *testing.T) {
	orders := []model.Order{
		{ID: "a", TabID: "tab-1", Lines: []model.OrderLine{
			line("p1", "A", "1", "10", "10"),
			line("p2", "B", "2", "7", "14"),
		}},
	}

	first := Orders("tab-1", orders)
	second := Orders("tab-1", orders)
	assert.Equal(t, first, second)
}

func TestBuildTab(t *testing.T) {
	now := time.Now()
	tab := model.Tab{
		ID:        "tab-1",
		Status:    model.TabOpen,
		CreatedAt: now,
		Orders: []model.Order{
			{ID: "old", TabID: "tab-1", CreatedAt: now.Add(-time.Hour),
				Lines: []model.OrderLine{line("p1", "A", "1", "10", "10")}},
			{ID: "new", TabID: "tab-1", CreatedAt: now,
				Lines: []model.OrderLine{line("p1", "A", "2", "10", "20")}},
			{ID: "stale", TabID: "tab-2", CreatedAt: now,
				Lines: []model.OrderLine{line("p9", "Z", "1", "99", "99")}},
		},
	}

	built, incomplete := BuildTab(tab)

	assert.Empty(t, incomplete)
	assert.True(t, built.TotalPrice.Equal(dec("30")))
	require.Len(t, built.Lines, 1)
	assert.True(t, built.Lines[0].Quantity.Equal(dec("3")))

	// History keeps only owned orders, newest first.
	require.Len(t, built.Orders, 2)
	assert.Equal(t, "new", built.Orders[0].ID)
	assert.Equal(t, "old", built.Orders[1].ID)

	// Input tab is untouched.
	assert.Len(t, tab.Orders, 3)
	assert.Nil(t, tab.Lines)
}

func TestSortTabsNewestFirst(t *testing.T) {
	now := time.Now()
	tabs := []model.Tab{
		{ID: "a", CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "b", CreatedAt: now},
		{ID: "c", CreatedAt: now.Add(-time.Hour)},
	}

	SortTabsNewestFirst(tabs)

	assert.Equal(t, "b", tabs[0].ID)
	assert.Equal(t, "c", tabs[1].ID)
	assert.Equal(t, "a", tabs[2].ID)
}

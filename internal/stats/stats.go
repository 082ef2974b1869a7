// Package stats derives the manager-dashboard figures from the fetched
// tab and order collections. Everything is recomputed from scratch on
// each refresh; nothing here keeps state.
package stats

import (
	"sort"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"comanda/internal/model"
)

// Card is one headline figure on the dashboard.
type Card struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// TopProduct is one row of the best-sellers ranking.
type TopProduct struct {
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
	Revenue  decimal.Decimal `json:"revenue"`
}

// StatusCount is one bucket of the status breakdown.
type StatusCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
	Icon  string `json:"icon"`
}

// HourBucket is the revenue attributed to one hour of the day.
type HourBucket struct {
	Hour       string          `json:"hour"`
	Revenue    decimal.Decimal `json:"revenue"`
	Percentage float64         `json:"percentage"`
}

// DailyRevenue summarises the day's takings.
type DailyRevenue struct {
	Total         string `json:"total"`
	Average       string `json:"average"`
	CompletedTabs int    `json:"completedTabs"`
}

// Snapshot is the full dashboard payload.
type Snapshot struct {
	Cards        []Card        `json:"cards"`
	TopProducts  []TopProduct  `json:"topProducts"`
	StatusCounts []StatusCount `json:"statusCounts"`
	SalesByHour  []HourBucket  `json:"salesByHour"`
	DailyRevenue DailyRevenue  `json:"dailyRevenue"`
}

const topProductLimit = 5

var printer = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL renders a money amount the way the dashboard displays it.
func FormatBRL(d decimal.Decimal) string {
	f, _ := d.Float64()
	return printer.Sprint(currency.Symbol(currency.BRL.Amount(f)))
}

// Compute derives the dashboard snapshot. Revenue counts closed tabs
// only; the status breakdown and hourly buckets come from the flat order
// list. Nil collections are treated as empty.
func Compute(tabs []model.Tab, orders []model.Order) Snapshot {
	var open, closed int
	revenue := decimal.Zero
	for _, tab := range tabs {
		switch tab.Status {
		case model.TabClosed:
			closed++
			revenue = revenue.Add(tabRevenue(tab))
		case model.TabOpen:
			open++
		}
	}

	average := decimal.Zero
	if closed > 0 {
		average = revenue.DivRound(decimal.NewFromInt(int64(closed)), 2)
	}

	var openOrders, closedOrders int
	for _, o := range orders {
		switch o.Status {
		case model.OrderOpen:
			openOrders++
		case model.OrderClosed:
			closedOrders++
		}
	}

	return Snapshot{
		Cards: []Card{
			{Title: "Total de Comandas", Value: printer.Sprintf("%d", len(tabs)), Icon: "📋", Color: "blue"},
			{Title: "Receita Total", Value: FormatBRL(revenue), Icon: "💰", Color: "green"},
			{Title: "Ticket Médio", Value: FormatBRL(average), Icon: "📊", Color: "purple"},
			{Title: "Comandas Fechadas", Value: printer.Sprintf("%d", closed), Icon: "✅", Color: "green"},
		},
		TopProducts:  topProducts(tabs),
		StatusCounts: []StatusCount{
			{Label: "Comandas Abertas", Count: open, Icon: "📝"},
			{Label: "Pedidos Abertos", Count: openOrders, Icon: "📤"},
			{Label: "Pedidos Fechados", Count: closedOrders, Icon: "✅"},
			{Label: "Comandas Fechadas", Count: closed, Icon: "🎉"},
		},
		SalesByHour: salesByHour(orders),
		DailyRevenue: DailyRevenue{
			Total:         FormatBRL(revenue),
			Average:       FormatBRL(average),
			CompletedTabs: closed,
		},
	}
}

func tabRevenue(tab model.Tab) decimal.Decimal {
	total := decimal.Zero
	for _, order := range tab.Orders {
		for _, line := range order.Lines {
			total = total.Add(line.TotalPrice)
		}
	}
	return total
}

// topProducts ranks products by revenue across all tabs' orders. Repeated
// lines accumulate by product id; unlike the per-tab listing, per-weight
// lines accumulate too, since the ranking cares about revenue, not
// individual weighings.
func topProducts(tabs []model.Tab) []TopProduct {
	type entry struct {
		TopProduct
		order int
	}
	byProduct := map[string]*entry{}
	for _, tab := range tabs {
		for _, o := range tab.Orders {
			for _, line := range o.Lines {
				name := line.ProductName
				if name == "" {
					name = "Produto"
				}
				e, ok := byProduct[line.ProductID]
				if !ok {
					e = &entry{TopProduct: TopProduct{Name: name}, order: len(byProduct)}
					byProduct[line.ProductID] = e
				}
				e.Quantity = e.Quantity.Add(line.Quantity)
				e.Revenue = e.Revenue.Add(line.TotalPrice)
			}
		}
	}

	ranked := make([]*entry, 0, len(byProduct))
	for _, e := range byProduct {
		ranked = append(ranked, e)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if !ranked[i].Revenue.Equal(ranked[j].Revenue) {
			return ranked[i].Revenue.GreaterThan(ranked[j].Revenue)
		}
		return ranked[i].order < ranked[j].order
	})

	if len(ranked) > topProductLimit {
		ranked = ranked[:topProductLimit]
	}
	out := make([]TopProduct, len(ranked))
	for i, e := range ranked {
		out[i] = e.TopProduct
	}
	return out
}

// salesByHour buckets order revenue by the hour the order was created,
// keeping only hours that saw sales. Percentage is relative to the best
// hour, for the dashboard's bar chart.
func salesByHour(orders []model.Order) []HourBucket {
	totals := map[int]decimal.Decimal{}
	for _, o := range orders {
		if o.CreatedAt.IsZero() {
			continue
		}
		total := decimal.Zero
		for _, line := range o.Lines {
			total = total.Add(line.TotalPrice)
		}
		h := o.CreatedAt.Hour()
		totals[h] = totals[h].Add(total)
	}

	hours := make([]int, 0, len(totals))
	max := decimal.Zero
	for h, total := range totals {
		hours = append(hours, h)
		if total.GreaterThan(max) {
			max = total
		}
	}
	sort.Ints(hours)

	out := make([]HourBucket, 0, len(hours))
	for _, h := range hours {
		pct := 0.0
		if max.IsPositive() {
			ratio, _ := totals[h].Div(max).Float64()
			pct = ratio * 100
		}
		out = append(out, HourBucket{
			Hour:       printer.Sprintf("%02d:00", h),
			Revenue:    totals[h],
			Percentage: pct,
		})
	}
	return out
}

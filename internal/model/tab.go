package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TabStatus is the lifecycle state of a customer tab.
type TabStatus string

const (
	TabOpen   TabStatus = "OPEN"
	TabClosed TabStatus = "CLOSED"
)

// OrderStatus is the lifecycle state of a single order batch.
type OrderStatus string

const (
	OrderOpen   OrderStatus = "OPEN"
	OrderClosed OrderStatus = "CLOSED"
)

// LineStatus is the kitchen-side state of a product line.
type LineStatus string

const (
	LinePending LineStatus = "pending"
	LineReady   LineStatus = "ready"
)

// Tab represents a running customer bill aggregating one or more orders.
// Lines is the deduplicated product listing derived across all orders;
// Orders keeps the raw order history, newest first.
type Tab struct {
	ID           string          `json:"id"`
	CustomerName string          `json:"customerName"`
	TableNumber  string          `json:"tableNumber,omitempty"`
	Status       TabStatus       `json:"status"`
	Lines        []TabLine       `json:"lines"`
	Orders       []Order         `json:"orders,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
	TotalPrice   decimal.Decimal `json:"totalPrice"`
}

// Order represents one batch of product lines submitted together.
// TabID is a back-reference to the owning tab, never an ownership link.
type Order struct {
	ID        string      `json:"id"`
	TabID     string      `json:"tabId,omitempty"`
	Status    OrderStatus `json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
	Lines     []OrderLine `json:"lines"`
}

// OrderLine is a single product line within an order. For per-weight
// products Quantity holds the weighed amount and UnitPrice the rate.
type OrderLine struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	TotalPrice  decimal.Decimal `json:"totalPrice"`
	PerWeight   bool            `json:"perWeight"`
}

// TabLine is one row of the aggregated per-tab product listing.
type TabLine struct {
	OrderLine
	Status LineStatus `json:"status"`
}

// NewLineRequest is a product line to be submitted in a new order.
type NewLineRequest struct {
	ProductID string          `json:"productId"`
	Quantity  decimal.Decimal `json:"quantity"`
}

package gateway

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"comanda/internal/model"
)

// Raw wire shapes, decoded straight from gateway responses. They are kept
// separate from the internal model so field coalescing and defaults happen
// in one place, the map* functions below, instead of ad hoc at call sites.

type rawTab struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	Table     *rawTable  `json:"table"`
	Orders    []rawOrder `json:"orders"`
}

type rawOrder struct {
	ID            string         `json:"id"`
	Status        string         `json:"status"`
	CustomerTabID string         `json:"customerTabId"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	Products      []rawOrderLine `json:"products"`
}

type rawOrderLine struct {
	ProductID  string           `json:"productId"`
	Quantity   decimal.Decimal  `json:"quantity"`
	TotalPrice decimal.Decimal  `json:"totalPrice"`
	Product    *rawProductBrief `json:"product"`
}

type rawProductBrief struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	IsPricePerKg bool            `json:"isPricePerKg"`
}

type rawProduct struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Price             decimal.Decimal `json:"price"`
	Code              string          `json:"code"`
	NeedPreparation   bool            `json:"needPreparation"`
	IsPricePerKg      bool            `json:"isPricePerKg"`
	ProductCategoryID string          `json:"productCategoryId"`
	Active            *bool           `json:"active"`
}

type rawCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

type rawTable struct {
	ID     string      `json:"id"`
	Code   json.Number `json:"code"`
	Status string      `json:"status"`
}

type rawAuthResult struct {
	JWTToken string `json:"jwtToken"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// AuthResult is the outcome of a Google-token authentication.
type AuthResult struct {
	Token string
	Email string
	Role  model.Role
}

// tabStatusFromWire collapses the status vocabulary the backend and older
// query shapes use into the single tab enum. Anything not recognisably
// closed counts as open.
func tabStatusFromWire(s string) model.TabStatus {
	switch s {
	case "CLOSED", "closed", "completed":
		return model.TabClosed
	default:
		return model.TabOpen
	}
}

// orderStatusFromWire collapses the order-level vocabulary (CREATED,
// IN_PREPARATION, OPEN, CLOSED) into the order enum.
func orderStatusFromWire(s string) model.OrderStatus {
	switch s {
	case "CLOSED", "closed":
		return model.OrderClosed
	default:
		return model.OrderOpen
	}
}

func tableStatusFromWire(s string) model.TableStatus {
	if s == string(model.TableBusy) {
		return model.TableBusy
	}
	return model.TableFree
}

func mapTab(r rawTab) model.Tab {
	tab := model.Tab{
		ID:           r.ID,
		CustomerName: r.Name,
		Status:       tabStatusFromWire(r.Status),
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
	if tab.CustomerName == "" {
		tab.CustomerName = "Cliente"
	}
	if r.Table != nil {
		tab.TableNumber = r.Table.Code.String()
	}
	tab.Orders = make([]model.Order, 0, len(r.Orders))
	for _, o := range r.Orders {
		tab.Orders = append(tab.Orders, mapOrder(o))
	}
	return tab
}

func mapOrder(r rawOrder) model.Order {
	order := model.Order{
		ID:        r.ID,
		TabID:     r.CustomerTabID,
		Status:    orderStatusFromWire(r.Status),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	order.Lines = make([]model.OrderLine, 0, len(r.Products))
	for _, line := range r.Products {
		order.Lines = append(order.Lines, mapOrderLine(line))
	}
	return order
}

// mapOrderLine tolerates a missing product snapshot: name and unit price
// stay at their zero values, which the aggregation reports as an
// incomplete line instead of failing the whole tab.
func mapOrderLine(r rawOrderLine) model.OrderLine {
	line := model.OrderLine{
		ProductID:  r.ProductID,
		Quantity:   r.Quantity,
		TotalPrice: r.TotalPrice,
	}
	if r.Product != nil {
		line.ProductName = r.Product.Name
		line.UnitPrice = r.Product.Price
		line.PerWeight = r.Product.IsPricePerKg
	}
	return line
}

// mapProduct default-fills the active flag: the current gateway shape has
// no soft-delete marker, so everything it returns is sellable.
func mapProduct(r rawProduct) model.Product {
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return model.Product{
		ID:               r.ID,
		Name:             r.Name,
		Price:            r.Price,
		Code:             r.Code,
		CategoryID:       r.ProductCategoryID,
		PerWeight:        r.IsPricePerKg,
		NeedsPreparation: r.NeedPreparation,
		Active:           active,
	}
}

func mapCategory(r rawCategory) model.Category {
	icon := r.Icon
	if icon == "" {
		icon = model.DefaultCategoryIcon
	}
	return model.Category{ID: r.ID, Name: r.Name, Icon: icon}
}

func mapTable(r rawTable) model.Table {
	return model.Table{
		ID:     r.ID,
		Number: r.Code.String(),
		Status: tableStatusFromWire(r.Status),
	}
}

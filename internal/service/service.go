package service

import (
	"context"

	"github.com/shopspring/decimal"

	"comanda/internal/model"
	"comanda/internal/stats"
)

// TabService drives the customer-tab screens: it loads tabs from the
// gateway, runs the aggregation pipeline, and republishes the derived
// views. Mutations refetch on success; there is no incremental merging.
type TabService interface {
	// Refresh reloads the open and closed tab views from the gateway.
	Refresh(ctx context.Context) error

	// OpenTabs returns the latest open-tabs snapshot, newest first.
	OpenTabs() []model.Tab

	// ClosedTabs returns the latest closed-tabs snapshot, newest first.
	ClosedTabs() []model.Tab

	// CreateTab seats a customer at a table.
	CreateTab(ctx context.Context, tableID, name string) (*model.Tab, error)

	// CreateOrder submits a batch of product lines. An empty tabID
	// creates a walk-in order not attached to any tab.
	CreateOrder(ctx context.Context, tabID string, lines []model.NewLineRequest) (*model.Order, error)

	// Order fetches a single order by id; nil when the gateway has none.
	Order(ctx context.Context, id string) (*model.Order, error)

	CloseTab(ctx context.Context, id string) error
	CloseOrder(ctx context.Context, id string) error
	DeleteTab(ctx context.Context, id string) error
	DeleteOrder(ctx context.Context, id string) error

	// EmailReceipt asks the gateway to mail the tab's receipt.
	EmailReceipt(ctx context.Context, id, email string) error
}

// CatalogService drives the product and category screens.
type CatalogService interface {
	// Refresh reloads products and categories from the gateway.
	Refresh(ctx context.Context) error

	// Products returns one page of the catalogue, optionally filtered by
	// category, along with the total count before paging. Inactive
	// products are excluded.
	Products(categoryID string, limit, offset int) ([]model.Product, int)

	// Categories returns the latest category snapshot.
	Categories() []model.Category

	CreateProduct(ctx context.Context, name string, price decimal.Decimal, categoryID string, perWeight bool) (*model.Product, error)
	UpdateProduct(ctx context.Context, id string, updates model.ProductUpdate) error
	DeleteProduct(ctx context.Context, id string) error
	CreateCategory(ctx context.Context, name, icon string) (*model.Category, error)
}

// TableService drives the floor view: tables with occupancy derived from
// the open tabs on every reload.
type TableService interface {
	Refresh(ctx context.Context) error
	Tables() []model.Table
	FreeTables() []model.Table
	CreateTable(ctx context.Context) (*model.Table, error)
}

// StatsService produces the manager-dashboard snapshot. Statistics are
// always recomputed from fresh gateway data, never cached.
type StatsService interface {
	Snapshot(ctx context.Context) (stats.Snapshot, error)
}

// AuthService owns the session lifecycle: Google-token login through the
// gateway, session persistence, and restore at startup.
type AuthService interface {
	// Restore loads a persisted session, if any, and attaches its token
	// to the gateway. A missing or corrupt session is not an error.
	Restore(ctx context.Context) (*model.User, error)

	// Login exchanges a Google ID token for a gateway session.
	Login(ctx context.Context, idToken string, profile GoogleProfile) (*model.User, error)

	// Logout clears the session on disk and the gateway token.
	Logout(ctx context.Context) error

	// CurrentUser returns the logged-in user, or nil.
	CurrentUser() *model.User
}

// GoogleProfile is the client-side profile accompanying a Google ID
// token; the gateway only verifies the token and reports email and role.
type GoogleProfile struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

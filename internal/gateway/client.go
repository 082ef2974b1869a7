// Package gateway is the client for the remote GraphQL backend that owns
// all persistence and order lifecycle logic. It exposes typed operations
// over the raw wire shapes and performs the raw-to-model normalization;
// nothing above this package sees gateway field names.
package gateway

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/machinebox/graphql"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"comanda/internal/model"
)

// ErrRejected is returned when a mutation resolves successfully but the
// backend reports it did not apply (a false result on the wire).
var ErrRejected = model.NewDomainError(model.ErrCodeGatewayError, "Gateway rejected the mutation")

// Gateway is the surface the services consume. Implementations must be
// safe for concurrent use.
type Gateway interface {
	CustomerTabs(ctx context.Context) ([]model.Tab, error)
	CustomerTabsByStatus(ctx context.Context, status model.TabStatus) ([]model.Tab, error)
	Orders(ctx context.Context) ([]model.Order, error)
	OrderByID(ctx context.Context, id string) (*model.Order, error)
	Tables(ctx context.Context) ([]model.Table, error)
	Products(ctx context.Context) ([]model.Product, error)
	ProductCategories(ctx context.Context) ([]model.Category, error)

	CreateCustomerTab(ctx context.Context, tableID, name string) (*model.Tab, error)
	CloseCustomerTab(ctx context.Context, id string) error
	DeleteCustomerTab(ctx context.Context, id string) error
	SendCustomerTabEmail(ctx context.Context, id, email string) error

	CreateOrder(ctx context.Context, tabID string, lines []model.NewLineRequest) (*model.Order, error)
	CloseOrder(ctx context.Context, id string) error
	DeleteOrder(ctx context.Context, id string) error

	CreateProduct(ctx context.Context, name string, price decimal.Decimal, categoryID string, perWeight bool) (*model.Product, error)
	UpdateProduct(ctx context.Context, id string, updates model.ProductUpdate) error
	DeleteProduct(ctx context.Context, id string) error
	CreateProductCategory(ctx context.Context, name, icon string) (*model.Category, error)
	CreateTable(ctx context.Context) (*model.Table, error)

	AuthenticateWithGoogle(ctx context.Context, idToken string) (*AuthResult, error)
}

// client implements Gateway over HTTP.
type client struct {
	gql    *graphql.Client
	logger zerolog.Logger

	mu    sync.RWMutex
	token string
}

// NewClient creates a gateway client for the given GraphQL endpoint.
func NewClient(endpoint string, timeout time.Duration, logger zerolog.Logger) Gateway {
	httpClient := &http.Client{Timeout: timeout}
	return &client{
		gql:    graphql.NewClient(endpoint, graphql.WithHTTPClient(httpClient)),
		logger: logger.With().Str("component", "gateway").Logger(),
	}
}

// SetToken stores the JWT attached to subsequent requests. An empty token
// clears authentication.
func (c *client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// TokenSetter is implemented by gateways that carry a session token.
type TokenSetter interface {
	SetToken(token string)
}

// run executes one GraphQL request with the session token attached and
// decodes the response into out.
func (c *client) run(ctx context.Context, op string, req *graphql.Request, out interface{}) error {
	c.mu.RLock()
	token := c.token
	c.mu.RUnlock()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	if err := c.gql.Run(ctx, req, out); err != nil {
		c.logger.Error().Err(err).Str("operation", op).Msg("gateway request failed")
		return fmt.Errorf("gateway %s: %w", op, err)
	}
	c.logger.Debug().
		Str("operation", op).
		Dur("duration", time.Since(start)).
		Msg("gateway request completed")
	return nil
}

func (c *client) CustomerTabs(ctx context.Context) ([]model.Tab, error) {
	var resp struct {
		CustomerTabs []rawTab `json:"customerTabs"`
	}
	if err := c.run(ctx, "customerTabs", graphql.NewRequest(queryCustomerTabs), &resp); err != nil {
		return nil, err
	}
	tabs := make([]model.Tab, 0, len(resp.CustomerTabs))
	for _, r := range resp.CustomerTabs {
		tabs = append(tabs, mapTab(r))
	}
	return tabs, nil
}

func (c *client) CustomerTabsByStatus(ctx context.Context, status model.TabStatus) ([]model.Tab, error) {
	req := graphql.NewRequest(queryCustomerTabsByStatus)
	req.Var("status", string(status))

	var resp struct {
		CustomerTabs []rawTab `json:"customerTabs"`
	}
	if err := c.run(ctx, "customerTabsByStatus", req, &resp); err != nil {
		return nil, err
	}
	tabs := make([]model.Tab, 0, len(resp.CustomerTabs))
	for _, r := range resp.CustomerTabs {
		tabs = append(tabs, mapTab(r))
	}
	return tabs, nil
}

func (c *client) Orders(ctx context.Context) ([]model.Order, error) {
	var resp struct {
		Orders []rawOrder `json:"orders"`
	}
	if err := c.run(ctx, "orders", graphql.NewRequest(queryOrders), &resp); err != nil {
		return nil, err
	}
	orders := make([]model.Order, 0, len(resp.Orders))
	for _, r := range resp.Orders {
		orders = append(orders, mapOrder(r))
	}
	return orders, nil
}

func (c *client) OrderByID(ctx context.Context, id string) (*model.Order, error) {
	req := graphql.NewRequest(queryOrderByID)
	req.Var("id", id)

	var resp struct {
		OrderByID *rawOrder `json:"orderById"`
	}
	if err := c.run(ctx, "orderById", req, &resp); err != nil {
		return nil, err
	}
	if resp.OrderByID == nil {
		return nil, nil
	}
	order := mapOrder(*resp.OrderByID)
	return &order, nil
}

func (c *client) Tables(ctx context.Context) ([]model.Table, error) {
	var resp struct {
		Tables []rawTable `json:"tables"`
	}
	if err := c.run(ctx, "tables", graphql.NewRequest(queryTables), &resp); err != nil {
		return nil, err
	}
	tables := make([]model.Table, 0, len(resp.Tables))
	for _, r := range resp.Tables {
		tables = append(tables, mapTable(r))
	}
	return tables, nil
}

func (c *client) Products(ctx context.Context) ([]model.Product, error) {
	var resp struct {
		Products []rawProduct `json:"products"`
	}
	if err := c.run(ctx, "products", graphql.NewRequest(queryProducts), &resp); err != nil {
		return nil, err
	}
	products := make([]model.Product, 0, len(resp.Products))
	for _, r := range resp.Products {
		products = append(products, mapProduct(r))
	}
	return products, nil
}

func (c *client) ProductCategories(ctx context.Context) ([]model.Category, error) {
	var resp struct {
		ProductCategories []rawCategory `json:"productCategories"`
	}
	if err := c.run(ctx, "productCategories", graphql.NewRequest(queryProductCategories), &resp); err != nil {
		return nil, err
	}
	categories := make([]model.Category, 0, len(resp.ProductCategories))
	for _, r := range resp.ProductCategories {
		categories = append(categories, mapCategory(r))
	}
	return categories, nil
}

func (c *client) CreateCustomerTab(ctx context.Context, tableID, name string) (*model.Tab, error) {
	req := graphql.NewRequest(mutationCreateCustomerTab)
	req.Var("input", map[string]interface{}{
		"tableId": tableID,
		"name":    name,
	})

	var resp struct {
		CreateCustomerTab *rawTab `json:"createCustomerTab"`
	}
	if err := c.run(ctx, "createCustomerTab", req, &resp); err != nil {
		return nil, err
	}
	if resp.CreateCustomerTab == nil {
		return nil, ErrRejected
	}
	tab := mapTab(*resp.CreateCustomerTab)
	return &tab, nil
}

func (c *client) CloseCustomerTab(ctx context.Context, id string) error {
	req := graphql.NewRequest(mutationCloseCustomerTab)
	req.Var("command", map[string]interface{}{"customerTabId": id})

	var resp struct {
		CloseCustomerTab bool `json:"closeCustomerTab"`
	}
	if err := c.run(ctx, "closeCustomerTab", req, &resp); err != nil {
		return err
	}
	if !resp.CloseCustomerTab {
		return ErrRejected
	}
	return nil
}

func (c *client) DeleteCustomerTab(ctx context.Context, id string) error {
	req := graphql.NewRequest(mutationDeleteCustomerTab)
	req.Var("id", id)

	var resp struct {
		DeleteCustomerTab bool `json:"deleteCustomerTab"`
	}
	if err := c.run(ctx, "deleteCustomerTab", req, &resp); err != nil {
		return err
	}
	if !resp.DeleteCustomerTab {
		return ErrRejected
	}
	return nil
}

func (c *client) SendCustomerTabEmail(ctx context.Context, id, email string) error {
	req := graphql.NewRequest(mutationSendCustomerTabEmail)
	req.Var("customerTabId", id)
	req.Var("email", email)

	var resp struct {
		SendCustomerTabEmail bool `json:"sendCustomerTabEmail"`
	}
	if err := c.run(ctx, "sendCustomerTabEmail", req, &resp); err != nil {
		return err
	}
	if !resp.SendCustomerTabEmail {
		return ErrRejected
	}
	return nil
}

// orderLineInput is the wire shape of one requested product line.
type orderLineInput struct {
	ProductID string          `json:"productId"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// CreateOrder submits a batch of product lines. An empty tabID creates a
// walk-in order not attached to any tab.
func (c *client) CreateOrder(ctx context.Context, tabID string, lines []model.NewLineRequest) (*model.Order, error) {
	req := graphql.NewRequest(mutationCreateOrder)
	if tabID != "" {
		req.Var("customerTabId", tabID)
	} else {
		req.Var("customerTabId", nil)
	}
	inputs := make([]orderLineInput, len(lines))
	for i, l := range lines {
		inputs[i] = orderLineInput{ProductID: l.ProductID, Quantity: l.Quantity}
	}
	req.Var("products", inputs)

	var resp struct {
		CreateOrder *rawOrder `json:"createOrder"`
	}
	if err := c.run(ctx, "createOrder", req, &resp); err != nil {
		return nil, err
	}
	if resp.CreateOrder == nil {
		return nil, ErrRejected
	}
	order := mapOrder(*resp.CreateOrder)
	return &order, nil
}

func (c *client) CloseOrder(ctx context.Context, id string) error {
	req := graphql.NewRequest(mutationCloseOrder)
	req.Var("command", map[string]interface{}{"orderId": id})

	var resp struct {
		CloseOrder bool `json:"closeOrder"`
	}
	if err := c.run(ctx, "closeOrder", req, &resp); err != nil {
		return err
	}
	if !resp.CloseOrder {
		return ErrRejected
	}
	return nil
}

func (c *client) DeleteOrder(ctx context.Context, id string) error {
	req := graphql.NewRequest(mutationDeleteOrder)
	req.Var("id", id)

	var resp struct {
		DeleteOrder bool `json:"deleteOrder"`
	}
	if err := c.run(ctx, "deleteOrder", req, &resp); err != nil {
		return err
	}
	if !resp.DeleteOrder {
		return ErrRejected
	}
	return nil
}

func (c *client) CreateProduct(ctx context.Context, name string, price decimal.Decimal, categoryID string, perWeight bool) (*model.Product, error) {
	req := graphql.NewRequest(mutationCreateProduct)
	req.Var("name", name)
	req.Var("price", price)
	if categoryID != "" {
		req.Var("productCategoryId", categoryID)
	} else {
		req.Var("productCategoryId", nil)
	}
	req.Var("isPricePerKg", perWeight)

	var resp struct {
		CreateProduct *rawProduct `json:"createProduct"`
	}
	if err := c.run(ctx, "createProduct", req, &resp); err != nil {
		return nil, err
	}
	if resp.CreateProduct == nil {
		return nil, ErrRejected
	}
	product := mapProduct(*resp.CreateProduct)
	return &product, nil
}

func (c *client) UpdateProduct(ctx context.Context, id string, updates model.ProductUpdate) error {
	req := graphql.NewRequest(mutationUpdateProduct)
	req.Var("id", id)
	req.Var("name", updates.Name)
	req.Var("price", updates.Price)
	req.Var("needPreparation", updates.NeedsPreparation)
	req.Var("productCategoryId", updates.CategoryID)
	req.Var("isPricePerKg", updates.PerWeight)

	var resp struct {
		UpdateProduct bool `json:"updateProduct"`
	}
	if err := c.run(ctx, "updateProduct", req, &resp); err != nil {
		return err
	}
	if !resp.UpdateProduct {
		return ErrRejected
	}
	return nil
}

func (c *client) DeleteProduct(ctx context.Context, id string) error {
	req := graphql.NewRequest(mutationDeleteProduct)
	req.Var("id", id)

	var resp struct {
		DeleteProduct bool `json:"deleteProduct"`
	}
	if err := c.run(ctx, "deleteProduct", req, &resp); err != nil {
		return err
	}
	if !resp.DeleteProduct {
		return ErrRejected
	}
	return nil
}

func (c *client) CreateProductCategory(ctx context.Context, name, icon string) (*model.Category, error) {
	req := graphql.NewRequest(mutationCreateProductCategory)
	req.Var("name", name)
	if icon != "" {
		req.Var("icon", icon)
	} else {
		req.Var("icon", nil)
	}

	var resp struct {
		CreateProductCategory *rawCategory `json:"createProductCategory"`
	}
	if err := c.run(ctx, "createProductCategory", req, &resp); err != nil {
		return nil, err
	}
	if resp.CreateProductCategory == nil {
		return nil, ErrRejected
	}
	category := mapCategory(*resp.CreateProductCategory)
	return &category, nil
}

func (c *client) CreateTable(ctx context.Context) (*model.Table, error) {
	var resp struct {
		CreateTable *rawTable `json:"createTable"`
	}
	if err := c.run(ctx, "createTable", graphql.NewRequest(mutationCreateTable), &resp); err != nil {
		return nil, err
	}
	if resp.CreateTable == nil {
		return nil, ErrRejected
	}
	table := mapTable(*resp.CreateTable)
	return &table, nil
}

func (c *client) AuthenticateWithGoogle(ctx context.Context, idToken string) (*AuthResult, error) {
	req := graphql.NewRequest(mutationAuthenticateWithGoogle)
	req.Var("idToken", idToken)

	var resp struct {
		AuthenticateWithGoogle *rawAuthResult `json:"authenticateWithGoogle"`
	}
	if err := c.run(ctx, "authenticateWithGoogle", req, &resp); err != nil {
		return nil, err
	}
	if resp.AuthenticateWithGoogle == nil {
		return nil, ErrRejected
	}
	return &AuthResult{
		Token: resp.AuthenticateWithGoogle.JWTToken,
		Email: resp.AuthenticateWithGoogle.Email,
		Role:  model.Role(resp.AuthenticateWithGoogle.Role),
	}, nil
}

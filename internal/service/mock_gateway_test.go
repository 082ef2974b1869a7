package service

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"comanda/internal/gateway"
	"comanda/internal/model"
)

// MockGateway is a mock implementation of gateway.Gateway.
type MockGateway struct {
	mock.Mock
	token string
}

func (m *MockGateway) SetToken(token string) {
	m.token = token
}

func (m *MockGateway) CustomerTabs(ctx context.Context) ([]model.Tab, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Tab), args.Error(1)
}

func (m *MockGateway) CustomerTabsByStatus(ctx context.Context, status model.TabStatus) ([]model.Tab, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Tab), args.Error(1)
}

func (m *MockGateway) Orders(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockGateway) OrderByID(ctx context.Context, id string) (*model.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockGateway) Tables(ctx context.Context) ([]model.Table, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Table), args.Error(1)
}

func (m *MockGateway) Products(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockGateway) ProductCategories(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Category), args.Error(1)
}

func (m *MockGateway) CreateCustomerTab(ctx context.Context, tableID, name string) (*model.Tab, error) {
	args := m.Called(ctx, tableID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tab), args.Error(1)
}

func (m *MockGateway) CloseCustomerTab(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockGateway) DeleteCustomerTab(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockGateway) SendCustomerTabEmail(ctx context.Context, id, email string) error {
	return m.Called(ctx, id, email).Error(0)
}

func (m *MockGateway) CreateOrder(ctx context.Context, tabID string, lines []model.NewLineRequest) (*model.Order, error) {
	args := m.Called(ctx, tabID, lines)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockGateway) CloseOrder(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockGateway) DeleteOrder(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockGateway) CreateProduct(ctx context.Context, name string, price decimal.Decimal, categoryID string, perWeight bool) (*model.Product, error) {
	args := m.Called(ctx, name, price, categoryID, perWeight)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockGateway) UpdateProduct(ctx context.Context, id string, updates model.ProductUpdate) error {
	return m.Called(ctx, id, updates).Error(0)
}

func (m *MockGateway) DeleteProduct(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockGateway) CreateProductCategory(ctx context.Context, name, icon string) (*model.Category, error) {
	args := m.Called(ctx, name, icon)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *MockGateway) CreateTable(ctx context.Context) (*model.Table, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Table), args.Error(1)
}

func (m *MockGateway) AuthenticateWithGoogle(ctx context.Context, idToken string) (*gateway.AuthResult, error) {
	args := m.Called(ctx, idToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gateway.AuthResult), args.Error(1)
}

// interface guard
var _ gateway.Gateway = (*MockGateway)(nil)
var _ gateway.TokenSetter = (*MockGateway)(nil)

package handler

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"comanda/internal/model"
	"comanda/internal/service"
	"comanda/internal/stats"
)

// MockTabService is a mock implementation of service.TabService.
type MockTabService struct {
	mock.Mock
}

func (m *MockTabService) Refresh(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockTabService) OpenTabs() []model.Tab {
	return m.Called().Get(0).([]model.Tab)
}

func (m *MockTabService) ClosedTabs() []model.Tab {
	return m.Called().Get(0).([]model.Tab)
}

func (m *MockTabService) CreateTab(ctx context.Context, tableID, name string) (*model.Tab, error) {
	args := m.Called(ctx, tableID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tab), args.Error(1)
}

func (m *MockTabService) CreateOrder(ctx context.Context, tabID string, lines []model.NewLineRequest) (*model.Order, error) {
	args := m.Called(ctx, tabID, lines)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockTabService) Order(ctx context.Context, id string) (*model.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockTabService) CloseTab(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockTabService) CloseOrder(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockTabService) DeleteTab(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockTabService) DeleteOrder(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockTabService) EmailReceipt(ctx context.Context, id, email string) error {
	return m.Called(ctx, id, email).Error(0)
}

// MockCatalogService is a mock implementation of service.CatalogService.
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) Refresh(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockCatalogService) Products(categoryID string, limit, offset int) ([]model.Product, int) {
	args := m.Called(categoryID, limit, offset)
	return args.Get(0).([]model.Product), args.Int(1)
}

func (m *MockCatalogService) Categories() []model.Category {
	return m.Called().Get(0).([]model.Category)
}

func (m *MockCatalogService) CreateProduct(ctx context.Context, name string, price decimal.Decimal, categoryID string, perWeight bool) (*model.Product, error) {
	args := m.Called(ctx, name, price, categoryID, perWeight)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockCatalogService) UpdateProduct(ctx context.Context, id string, updates model.ProductUpdate) error {
	return m.Called(ctx, id, updates).Error(0)
}

func (m *MockCatalogService) DeleteProduct(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCatalogService) CreateCategory(ctx context.Context, name, icon string) (*model.Category, error) {
	args := m.Called(ctx, name, icon)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

// MockTableService is a mock implementation of service.TableService.
type MockTableService struct {
	mock.Mock
}

func (m *MockTableService) Refresh(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockTableService) Tables() []model.Table {
	return m.Called().Get(0).([]model.Table)
}

func (m *MockTableService) FreeTables() []model.Table {
	return m.Called().Get(0).([]model.Table)
}

func (m *MockTableService) CreateTable(ctx context.Context) (*model.Table, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Table), args.Error(1)
}

// MockStatsService is a mock implementation of service.StatsService.
type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) Snapshot(ctx context.Context) (stats.Snapshot, error) {
	args := m.Called(ctx)
	return args.Get(0).(stats.Snapshot), args.Error(1)
}

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Restore(ctx context.Context) (*model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, idToken string, profile service.GoogleProfile) (*model.User, error) {
	args := m.Called(ctx, idToken, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockAuthService) CurrentUser() *model.User {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*model.User)
}

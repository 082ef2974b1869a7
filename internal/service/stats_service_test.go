package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"comanda/internal/model"
)

func TestStatsService_Snapshot(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	orders := []model.Order{
		{
			ID: "order-1", TabID: "tab-1", Status: model.OrderClosed, CreatedAt: base,
			Lines: []model.OrderLine{
				{
					ProductID:   "prod-1",
					ProductName: "Coxinha",
					Quantity:    decimal.NewFromInt(10),
					UnitPrice:   decimal.NewFromInt(5),
					TotalPrice:  decimal.NewFromInt(50),
				},
			},
		},
	}
	tabs := []model.Tab{
		{ID: "tab-1", Status: model.TabClosed, Orders: orders, TotalPrice: decimal.NewFromInt(50), CreatedAt: base},
		{ID: "tab-2", Status: model.TabOpen, TotalPrice: decimal.NewFromInt(30), CreatedAt: base},
	}

	mockGw := new(MockGateway)
	mockGw.On("CustomerTabs", mock.Anything).Return(tabs, nil)
	mockGw.On("Orders", mock.Anything).Return(orders, nil)

	svc := NewStatsService(mockGw, zerolog.Nop())
	snap, err := svc.Snapshot(context.Background())

	require.NoError(t, err)
	assert.NotEmpty(t, snap.Cards)
	require.Len(t, snap.TopProducts, 1)
	assert.Equal(t, "Coxinha", snap.TopProducts[0].Name)
	assert.Equal(t, 1, snap.DailyRevenue.CompletedTabs)
	mockGw.AssertExpectations(t)
}

func TestStatsService_Snapshot_GatewayError(t *testing.T) {
	mockGw := new(MockGateway)
	mockGw.On("CustomerTabs", mock.Anything).Return(nil, errors.New("gateway down"))

	svc := NewStatsService(mockGw, zerolog.Nop())
	_, err := svc.Snapshot(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load tabs for statistics")
	mockGw.AssertNotCalled(t, "Orders")
}

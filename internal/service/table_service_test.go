package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"comanda/internal/model"
)

func TestTableService_Refresh(t *testing.T) {
	tables := []model.Table{
		{ID: "table-1", Number: "1"},
		{ID: "table-2", Number: "2"},
		{ID: "table-3", Number: "3", Status: model.TableBusy}, // stale wire status
	}
	openTabs := []model.Tab{
		{ID: "tab-1", CustomerName: "Ana", TableNumber: "2", Status: model.TabOpen},
	}

	mockGw := new(MockGateway)
	mockGw.On("Tables", mock.Anything).Return(tables, nil)
	mockGw.On("CustomerTabsByStatus", mock.Anything, model.TabOpen).Return(openTabs, nil)

	svc := NewTableService(mockGw, zerolog.Nop())
	require.NoError(t, svc.Refresh(context.Background()))

	got := svc.Tables()
	require.Len(t, got, 3)

	assert.Equal(t, model.TableFree, got[0].Status)
	assert.Nil(t, got[0].Tab)

	assert.Equal(t, model.TableBusy, got[1].Status)
	require.NotNil(t, got[1].Tab)
	assert.Equal(t, "Ana", got[1].Tab.CustomerName)

	assert.Equal(t, model.TableFree, got[2].Status, "wire status is discarded when no open tab matches")
	assert.Nil(t, got[2].Tab)

	free := svc.FreeTables()
	require.Len(t, free, 2)
	assert.Equal(t, "table-1", free[0].ID)
	assert.Equal(t, "table-3", free[1].ID)

	mockGw.AssertExpectations(t)
}

func TestTableService_Refresh_GatewayError(t *testing.T) {
	mockGw := new(MockGateway)
	mockGw.On("Tables", mock.Anything).Return(nil, errors.New("gateway down"))

	svc := NewTableService(mockGw, zerolog.Nop())
	err := svc.Refresh(context.Background())

	require.Error(t, err)
	assert.Empty(t, svc.Tables())
	mockGw.AssertNotCalled(t, "CustomerTabsByStatus")
}

func TestTableService_CreateTable(t *testing.T) {
	created := &model.Table{ID: "table-4", Number: "4", Status: model.TableFree}

	mockGw := new(MockGateway)
	mockGw.On("CreateTable", mock.Anything).Return(created, nil)
	mockGw.On("Tables", mock.Anything).
		Return([]model.Table{{ID: "table-4", Number: "4"}}, nil)
	mockGw.On("CustomerTabsByStatus", mock.Anything, model.TabOpen).
		Return([]model.Tab{}, nil)

	svc := NewTableService(mockGw, zerolog.Nop())
	table, err := svc.CreateTable(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "4", table.Number)
	assert.Len(t, svc.Tables(), 1)
	mockGw.AssertExpectations(t)
}

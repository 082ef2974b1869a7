package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"comanda/internal/aggregate"
	"comanda/internal/gateway"
	"comanda/internal/model"
	"comanda/internal/store"
)

// tableService implements TableService.
type tableService struct {
	gw     gateway.Gateway
	logger zerolog.Logger

	tables *store.Collection[model.Table]
}

// NewTableService creates a new table service.
func NewTableService(gw gateway.Gateway, logger zerolog.Logger) TableService {
	return &tableService{
		gw:     gw,
		logger: logger.With().Str("service", "table").Logger(),
		tables: store.NewCollection[model.Table](),
	}
}

// Refresh reloads tables and open tabs, then derives occupancy from
// scratch. The reported wire status is discarded: which tab sits at
// which table is always recomputed from the open-tabs list.
func (s *tableService) Refresh(ctx context.Context) error {
	tables, err := s.gw.Tables(ctx)
	if err != nil {
		return fmt.Errorf("failed to refresh tables: %w", err)
	}
	openTabs, err := s.gw.CustomerTabsByStatus(ctx, model.TabOpen)
	if err != nil {
		return fmt.Errorf("failed to refresh open tabs: %w", err)
	}

	derived := make([]model.Tab, 0, len(openTabs))
	for _, tab := range openTabs {
		built, _ := aggregate.BuildTab(tab)
		derived = append(derived, built)
	}

	s.tables.Replace(aggregate.Occupancy(tables, derived))
	s.logger.Debug().Int("tables", s.tables.Len()).Msg("floor view refreshed")
	return nil
}

func (s *tableService) Tables() []model.Table {
	return s.tables.Snapshot()
}

func (s *tableService) FreeTables() []model.Table {
	return aggregate.FreeTables(s.tables.Snapshot())
}

func (s *tableService) CreateTable(ctx context.Context) (*model.Table, error) {
	table, err := s.gw.CreateTable(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create table")
		return nil, err
	}
	s.logger.Info().Str("table_id", table.ID).Str("number", table.Number).Msg("table created")
	if err := s.Refresh(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("refetch after table creation failed")
	}
	return table, nil
}

package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"comanda/internal/gateway"
	"comanda/internal/stats"
)

// statsService implements StatsService.
type statsService struct {
	gw     gateway.Gateway
	logger zerolog.Logger
}

// NewStatsService creates a new statistics service.
func NewStatsService(gw gateway.Gateway, logger zerolog.Logger) StatsService {
	return &statsService{
		gw:     gw,
		logger: logger.With().Str("service", "stats").Logger(),
	}
}

// Snapshot fetches tabs and orders and derives the dashboard figures.
// The dashboard always reflects the gateway's current state, so nothing
// is cached between calls.
func (s *statsService) Snapshot(ctx context.Context) (stats.Snapshot, error) {
	tabs, err := s.gw.CustomerTabs(ctx)
	if err != nil {
		return stats.Snapshot{}, fmt.Errorf("failed to load tabs for statistics: %w", err)
	}
	orders, err := s.gw.Orders(ctx)
	if err != nil {
		return stats.Snapshot{}, fmt.Errorf("failed to load orders for statistics: %w", err)
	}

	snap := stats.Compute(tabs, orders)
	s.logger.Debug().
		Int("tabs", len(tabs)).
		Int("orders", len(orders)).
		Msg("statistics computed")
	return snap, nil
}

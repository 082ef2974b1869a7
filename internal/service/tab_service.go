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

// tabService implements TabService.
type tabService struct {
	gw     gateway.Gateway
	logger zerolog.Logger

	open   *store.Collection[model.Tab]
	closed *store.Collection[model.Tab]
}

// NewTabService creates a new tab service.
func NewTabService(gw gateway.Gateway, logger zerolog.Logger) TabService {
	return &tabService{
		gw:     gw,
		logger: logger.With().Str("service", "tab").Logger(),
		open:   store.NewCollection[model.Tab](),
		closed: store.NewCollection[model.Tab](),
	}
}

// Refresh loads open and closed tabs concurrently, aggregates each tab's
// orders into its deduplicated listing, and replaces both views. If one
// load fails the other view is still replaced; the failed view keeps its
// previous snapshot.
func (s *tabService) Refresh(ctx context.Context) error {
	type result struct {
		status model.TabStatus
		tabs   []model.Tab
		err    error
	}

	results := make(chan result, 2)
	for _, status := range []model.TabStatus{model.TabOpen, model.TabClosed} {
		go func(status model.TabStatus) {
			tabs, err := s.loadTabs(ctx, status)
			results <- result{status: status, tabs: tabs, err: err}
		}(status)
	}

	var firstErr error
	for i := 0; i < 2; i++ {
		r := <-results
		if r.err != nil {
			if firstErr == nil {
				firstErr = r.err
			}
			continue
		}
		switch r.status {
		case model.TabOpen:
			s.open.Replace(r.tabs)
		case model.TabClosed:
			s.closed.Replace(r.tabs)
		}
	}

	if firstErr != nil {
		return fmt.Errorf("failed to refresh tabs: %w", firstErr)
	}
	s.logger.Debug().
		Int("open", s.open.Len()).
		Int("closed", s.closed.Len()).
		Msg("tab views refreshed")
	return nil
}

// loadTabs fetches one status variant and runs the aggregation pipeline.
// Incomplete product lines are logged and kept, per the tolerate-and-
// report policy.
func (s *tabService) loadTabs(ctx context.Context, status model.TabStatus) ([]model.Tab, error) {
	raw, err := s.gw.CustomerTabsByStatus(ctx, status)
	if err != nil {
		return nil, err
	}

	tabs := make([]model.Tab, 0, len(raw))
	for _, tab := range raw {
		built, incomplete := aggregate.BuildTab(tab)
		for _, diag := range incomplete {
			s.logger.Warn().
				Str("tab_id", tab.ID).
				Str("order_id", diag.OrderID).
				Str("product_id", diag.ProductID).
				Msg("product line missing its snapshot")
		}
		tabs = append(tabs, built)
	}
	aggregate.SortTabsNewestFirst(tabs)
	return tabs, nil
}

func (s *tabService) OpenTabs() []model.Tab {
	return s.open.Snapshot()
}

func (s *tabService) ClosedTabs() []model.Tab {
	return s.closed.Snapshot()
}

func (s *tabService) CreateTab(ctx context.Context, tableID, name string) (*model.Tab, error) {
	tab, err := s.gw.CreateCustomerTab(ctx, tableID, name)
	if err != nil {
		s.logger.Error().Err(err).Str("table_id", tableID).Msg("failed to create tab")
		return nil, err
	}
	s.refreshAfterMutation(ctx, "createTab")
	return tab, nil
}

func (s *tabService) CreateOrder(ctx context.Context, tabID string, lines []model.NewLineRequest) (*model.Order, error) {
	if len(lines) == 0 {
		return nil, model.NewDomainError(model.ErrCodeMissingField, "Order must contain at least one product line")
	}
	for _, line := range lines {
		if line.ProductID == "" {
			return nil, model.NewDomainError(model.ErrCodeMissingField, "Product line is missing its product id")
		}
		if !line.Quantity.IsPositive() {
			return nil, model.ErrInvalidQuantity
		}
	}

	order, err := s.gw.CreateOrder(ctx, tabID, lines)
	if err != nil {
		s.logger.Error().Err(err).Str("tab_id", tabID).Msg("failed to create order")
		return nil, err
	}
	s.logger.Info().
		Str("order_id", order.ID).
		Str("tab_id", tabID).
		Int("line_count", len(lines)).
		Msg("order created")
	s.refreshAfterMutation(ctx, "createOrder")
	return order, nil
}

func (s *tabService) Order(ctx context.Context, id string) (*model.Order, error) {
	order, err := s.gw.OrderByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id).Msg("failed to fetch order")
		return nil, err
	}
	return order, nil
}

func (s *tabService) CloseTab(ctx context.Context, id string) error {
	if err := s.gw.CloseCustomerTab(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("tab_id", id).Msg("failed to close tab")
		return err
	}
	s.logger.Info().Str("tab_id", id).Msg("tab closed")
	s.refreshAfterMutation(ctx, "closeTab")
	return nil
}

func (s *tabService) CloseOrder(ctx context.Context, id string) error {
	if err := s.gw.CloseOrder(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("order_id", id).Msg("failed to close order")
		return err
	}
	s.refreshAfterMutation(ctx, "closeOrder")
	return nil
}

func (s *tabService) DeleteTab(ctx context.Context, id string) error {
	if err := s.gw.DeleteCustomerTab(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("tab_id", id).Msg("failed to delete tab")
		return err
	}
	s.logger.Info().Str("tab_id", id).Msg("tab deleted")
	s.refreshAfterMutation(ctx, "deleteTab")
	return nil
}

func (s *tabService) DeleteOrder(ctx context.Context, id string) error {
	if err := s.gw.DeleteOrder(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("order_id", id).Msg("failed to delete order")
		return err
	}
	s.refreshAfterMutation(ctx, "deleteOrder")
	return nil
}

func (s *tabService) EmailReceipt(ctx context.Context, id, email string) error {
	if email == "" {
		return model.NewDomainError(model.ErrCodeMissingField, "Email address is required")
	}
	if err := s.gw.SendCustomerTabEmail(ctx, id, email); err != nil {
		s.logger.Error().Err(err).Str("tab_id", id).Msg("failed to send receipt email")
		return err
	}
	s.logger.Info().Str("tab_id", id).Msg("receipt email sent")
	return nil
}

// refreshAfterMutation refetches the tab views after a successful
// mutation. A failed refetch only logs: the mutation itself succeeded,
// and the stale views stay consistent until the next reload.
func (s *tabService) refreshAfterMutation(ctx context.Context, op string) {
	if err := s.Refresh(ctx); err != nil {
		s.logger.Warn().Err(err).Str("operation", op).Msg("refetch after mutation failed")
	}
}

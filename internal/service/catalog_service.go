package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"comanda/internal/aggregate"
	"comanda/internal/gateway"
	"comanda/internal/model"
	"comanda/internal/store"
)

// catalogService implements CatalogService.
type catalogService struct {
	gw     gateway.Gateway
	logger zerolog.Logger

	products   *store.Collection[model.Product]
	categories *store.Collection[model.Category]
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(gw gateway.Gateway, logger zerolog.Logger) CatalogService {
	return &catalogService{
		gw:         gw,
		logger:     logger.With().Str("service", "catalog").Logger(),
		products:   store.NewCollection[model.Product](),
		categories: store.NewCollection[model.Category](),
	}
}

func (s *catalogService) Refresh(ctx context.Context) error {
	products, err := s.gw.Products(ctx)
	if err != nil {
		return fmt.Errorf("failed to refresh products: %w", err)
	}
	categories, err := s.gw.ProductCategories(ctx)
	if err != nil {
		return fmt.Errorf("failed to refresh categories: %w", err)
	}

	s.products.Replace(products)
	s.categories.Replace(categories)
	s.logger.Debug().
		Int("products", len(products)).
		Int("categories", len(categories)).
		Msg("catalogue refreshed")
	return nil
}

// Products filters the latest snapshot by category, drops inactive
// products, and pages the result. A non-positive limit means no paging.
func (s *catalogService) Products(categoryID string, limit, offset int) ([]model.Product, int) {
	filtered := aggregate.ByCategory(aggregate.ActiveOnly(s.products.Snapshot()), categoryID)
	total := len(filtered)

	if offset < 0 {
		offset = 0
	}
	if offset > total {
		offset = total
	}
	filtered = filtered[offset:]
	if limit > 0 && limit < len(filtered) {
		filtered = filtered[:limit]
	}
	return filtered, total
}

func (s *catalogService) Categories() []model.Category {
	return s.categories.Snapshot()
}

func (s *catalogService) CreateProduct(ctx context.Context, name string, price decimal.Decimal, categoryID string, perWeight bool) (*model.Product, error) {
	if name == "" {
		return nil, model.NewDomainError(model.ErrCodeMissingField, "Product name is required")
	}
	if price.IsNegative() {
		return nil, model.NewDomainError(model.ErrCodeMissingField, "Product price cannot be negative")
	}

	product, err := s.gw.CreateProduct(ctx, name, price, categoryID, perWeight)
	if err != nil {
		s.logger.Error().Err(err).Str("name", name).Msg("failed to create product")
		return nil, err
	}
	s.logger.Info().Str("product_id", product.ID).Str("name", name).Msg("product created")
	s.refreshAfterMutation(ctx, "createProduct")
	return product, nil
}

func (s *catalogService) UpdateProduct(ctx context.Context, id string, updates model.ProductUpdate) error {
	if err := s.gw.UpdateProduct(ctx, id, updates); err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to update product")
		return err
	}
	s.refreshAfterMutation(ctx, "updateProduct")
	return nil
}

func (s *catalogService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.gw.DeleteProduct(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to delete product")
		return err
	}
	s.logger.Info().Str("product_id", id).Msg("product deleted")
	s.refreshAfterMutation(ctx, "deleteProduct")
	return nil
}

func (s *catalogService) CreateCategory(ctx context.Context, name, icon string) (*model.Category, error) {
	if name == "" {
		return nil, model.NewDomainError(model.ErrCodeMissingField, "Category name is required")
	}

	category, err := s.gw.CreateProductCategory(ctx, name, icon)
	if err != nil {
		s.logger.Error().Err(err).Str("name", name).Msg("failed to create category")
		return nil, err
	}
	s.refreshAfterMutation(ctx, "createCategory")
	return category, nil
}

func (s *catalogService) refreshAfterMutation(ctx context.Context, op string) {
	if err := s.Refresh(ctx); err != nil {
		s.logger.Warn().Err(err).Str("operation", op).Msg("refetch after mutation failed")
	}
}

package service

import (
	"context"

	"storefront/internal/models"
	"storefront/internal/util"
)

// CatalogService reads products from the store. Every call issues a fresh
// read; there is no cache layer.
type CatalogService struct {
	products ProductStore
}

// NewCatalogService creates a new catalog service
func NewCatalogService(products ProductStore) *CatalogService {
	return &CatalogService{products: products}
}

// ListProducts returns all products.
func (s *CatalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	ctx, span := util.StartSpan(ctx, "CatalogService.ListProducts")
	defer span.End()

	return s.products.GetProducts(ctx)
}

// GetProduct returns one product by id.
func (s *CatalogService) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	ctx, span := util.StartSpan(ctx, "CatalogService.GetProduct")
	defer span.End()

	return s.products.GetProductByID(ctx, id)
}

package service

import (
	"context"
	"testing"

	"storefront/internal/models"
	"storefront/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProduct(t *testing.T) {
	products := &mockProductStore{products: map[int64]*models.Product{
		1: {ID: 1, Name: "Mug", Price: 1000},
	}}
	svc := NewCatalogService(products)

	product, err := svc.GetProduct(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Mug", product.Name)

	_, err = svc.GetProduct(context.Background(), 99)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestListProducts(t *testing.T) {
	products := &mockProductStore{products: map[int64]*models.Product{
		1: {ID: 1, Name: "Mug", Price: 1000},
		2: {ID: 2, Name: "Shirt", Price: 800},
	}}
	svc := NewCatalogService(products)

	got, err := svc.ListProducts(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

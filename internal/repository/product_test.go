package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shop-service/internal/entity"
)

func TestProductRepository_CRUD(t *testing.T) {
	repo := NewProductRepository(newTestDB(t))
	ctx := context.Background()

	created, err := repo.CreateProduct(ctx, &entity.Product{Name: "T-shirt", Description: "A good T-shirt", Price: 20})
	require.NoError(t, err)

	got, err := repo.GetProductByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = repo.UpdateProduct(ctx, &entity.Product{ID: created.ID, Name: "Jeans", Price: 50})
	require.NoError(t, err)
	got, err = repo.GetProductByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jeans", got.Name)
	assert.Empty(t, got.Description, "update replaces every field")
	assert.Equal(t, 50.0, got.Price)

	_, err = repo.DeleteProduct(ctx, created.ID)
	require.NoError(t, err)
	_, err = repo.GetProductByID(ctx, created.ID)
	assert.ErrorIs(t, err, entity.ErrNotFound)

	products, err := repo.GetProducts(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)
}

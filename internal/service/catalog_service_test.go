package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shop-service/internal/entity"
)

func productIDs(products []entity.Product) []int {
	ids := make([]int, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestCatalogService_Categories(t *testing.T) {
	svc := NewCatalogService()

	clothing, err := svc.Category("clothing")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, productIDs(clothing.Products))

	shoes, err := svc.Category("shoes")
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4}, productIDs(shoes.Products))

	_, err = svc.Category("hats")
	assert.ErrorIs(t, err, entity.ErrNotFound)

	assert.Len(t, svc.Categories(), 2)
}

func TestCatalogService_Product(t *testing.T) {
	svc := NewCatalogService()

	p, err := svc.Product(3)
	require.NoError(t, err)
	assert.Equal(t, "Sneakers", p.Name)

	_, err = svc.Product(42)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestCatalogService_ReturnsCopies(t *testing.T) {
	svc := NewCatalogService()

	c, err := svc.Category("clothing")
	require.NoError(t, err)
	c.Products[0].Name = "changed"

	again, err := svc.Category("clothing")
	require.NoError(t, err)
	assert.Equal(t, "T-shirt", again.Products[0].Name)
}

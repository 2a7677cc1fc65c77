package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shop-service/internal/cache"
	"shop-service/internal/entity"
	"shop-service/internal/repository"
)

func TestOrderService_CRUD(t *testing.T) {
	pub := newMockPublisher()
	svc := NewOrderService(repository.NewOrderRepository(newTestDB(t)), cache.NopCache{}, time.Hour, pub)
	ctx := context.Background()

	req := entity.OrderRequest{UserID: 1, ProductID: 2, OrderDate: "2024-05-01", Status: "created"}
	created, err := svc.CreateOrder(ctx, req, "")
	require.NoError(t, err)

	got, err := svc.GetOrderByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, &entity.Order{ID: created.ID, UserID: 1, ProductID: 2, OrderDate: "2024-05-01", Status: "created"}, got)

	_, err = svc.UpdateOrder(ctx, created.ID, entity.OrderRequest{UserID: 3, ProductID: 4, OrderDate: "2024-06-01", Status: "paid"})
	require.NoError(t, err)
	got, err = svc.GetOrderByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "paid", got.Status)
	assert.Equal(t, 3, got.UserID)

	orders, err := svc.GetOrders(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 1)

	_, err = svc.DeleteOrder(ctx, created.ID)
	require.NoError(t, err)
	_, err = svc.DeleteOrder(ctx, created.ID)
	assert.ErrorIs(t, err, entity.ErrNotFound)
	_, err = svc.UpdateOrder(ctx, created.ID, req)
	assert.ErrorIs(t, err, entity.ErrNotFound)

	assert.Equal(t, []string{"order-created-1", "order-updated-1", "order-deleted-1"}, pub.keys())
}

func TestOrderService_IdempotentKey(t *testing.T) {
	c, mr := newTestCache(t)
	svc := NewOrderService(repository.NewOrderRepository(newTestDB(t)), c, 24*time.Hour, newMockPublisher())
	ctx := context.Background()
	req := entity.OrderRequest{UserID: 1, ProductID: 2, OrderDate: "2024-05-01", Status: "created"}

	_, err := svc.CreateOrder(ctx, req, "abc")
	require.NoError(t, err)
	assert.True(t, mr.Exists("idempotent-key:abc"))

	_, err = svc.CreateOrder(ctx, req, "abc")
	assert.ErrorIs(t, err, entity.ErrDuplicateRequest)

	_, err = svc.CreateOrder(ctx, req, "def")
	require.NoError(t, err)

	mr.FastForward(25 * time.Hour)
	_, err = svc.CreateOrder(ctx, req, "abc")
	require.NoError(t, err)

	orders, err := svc.GetOrders(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 3)
}

func TestOrderService_ReleasesKeyOnFailure(t *testing.T) {
	c, mr := newTestCache(t)
	db := newTestDB(t)
	svc := NewOrderService(repository.NewOrderRepository(db), c, time.Hour, newMockPublisher())
	ctx := context.Background()

	_, err := db.Exec(`DROP TABLE orders`)
	require.NoError(t, err)

	_, err = svc.CreateOrder(ctx, entity.OrderRequest{UserID: 1, ProductID: 1, OrderDate: "d", Status: "s"}, "retry-me")
	require.Error(t, err)
	assert.False(t, mr.Exists("idempotent-key:retry-me"))
}

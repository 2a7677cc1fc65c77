package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shop-service/internal/entity"
	"shop-service/internal/events"
)

// OrderService is a service that provides order-related operations
type OrderService struct {
	orderRepo      OrderRepository
	cache          Cache
	idempotencyTTL time.Duration
	publisher      Publisher
}

// NewOrderService creates a new instance of OrderService
func NewOrderService(orderRepo OrderRepository, cache Cache, idempotencyTTL time.Duration, publisher Publisher) *OrderService {
	return &OrderService{
		orderRepo:      orderRepo,
		cache:          cache,
		idempotencyTTL: idempotencyTTL,
		publisher:      publisher,
	}
}

func (s *OrderService) GetOrderByID(ctx context.Context, id int) (*entity.Order, error) {
	order, err := s.orderRepo.GetOrderByID(ctx, id)
	if err != nil {
		if !errors.Is(err, entity.ErrNotFound) {
			logger.Error().Err(err).Msgf("Error getting order by ID %d", id)
		}
		return nil, err
	}
	return order, nil
}

func (s *OrderService) GetOrders(ctx context.Context) ([]*entity.Order, error) {
	orders, err := s.orderRepo.GetOrders(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error getting orders")
		return nil, err
	}
	return orders, nil
}

// CreateOrder creates a new order. A non-empty idempotentKey may be used
// once per idempotency window; replays return entity.ErrDuplicateRequest.
// User and product ids are stored as given.
func (s *OrderService) CreateOrder(ctx context.Context, req entity.OrderRequest, idempotentKey string) (*entity.Order, error) {
	redisKey := ""
	if idempotentKey != "" {
		redisKey = fmt.Sprintf("idempotent-key:%s", idempotentKey)
		claimed, err := s.cache.SetNX(ctx, redisKey, "exists", s.idempotencyTTL)
		if err != nil {
			logger.Error().Err(err).Msg("Error validating idempotent key")
			return nil, err
		}
		if !claimed {
			return nil, entity.ErrDuplicateRequest
		}
	}

	createdOrder, err := s.orderRepo.CreateOrder(ctx, entity.NewOrder(req))
	if err != nil {
		logger.Error().Err(err).Msg("Error creating order")
		if redisKey != "" {
			// let the client retry with the same key
			if delErr := s.cache.Del(ctx, redisKey); delErr != nil {
				logger.Error().Err(delErr).Msg("Error releasing idempotent key")
			}
		}
		return nil, err
	}

	publish(ctx, s.publisher, "order", events.ActionCreated, createdOrder.ID, createdOrder)
	return createdOrder, nil
}

// UpdateOrder replaces every field of an existing order
func (s *OrderService) UpdateOrder(ctx context.Context, id int, req entity.OrderRequest) (*entity.Order, error) {
	order := entity.NewOrder(req)
	order.ID = id

	updateOrder, err := s.orderRepo.UpdateOrder(ctx, order)
	if err != nil {
		if !errors.Is(err, entity.ErrNotFound) {
			logger.Error().Err(err).Msg("Error updating order")
		}
		return nil, err
	}

	publish(ctx, s.publisher, "order", events.ActionUpdated, updateOrder.ID, updateOrder)
	return updateOrder, nil
}

// DeleteOrder removes an order and returns it
func (s *OrderService) DeleteOrder(ctx context.Context, id int) (*entity.Order, error) {
	order, err := s.orderRepo.DeleteOrder(ctx, id)
	if err != nil {
		if !errors.Is(err, entity.ErrNotFound) {
			logger.Error().Err(err).Msgf("Error deleting order %d", id)
		}
		return nil, err
	}

	publish(ctx, s.publisher, "order", events.ActionDeleted, order.ID, order)
	return order, nil
}

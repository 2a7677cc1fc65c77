package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"shop-service/internal/entity"
	"shop-service/internal/service"
)

type OrderHandler struct {
	orderService *service.OrderService
}

func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// CreateOrder --> POST /orders. An Idempotent-Key header makes retries safe.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var req entity.OrderRequest
	if err := bindRequest(c, &req); err != nil {
		return invalidPayload(c, err)
	}
	idempotentKey := c.Request().Header.Get("Idempotent-Key")

	createdOrder, err := h.orderService.CreateOrder(c.Request().Context(), req, idempotentKey)
	if err != nil {
		return serviceError(c, err, "Order")
	}

	return c.JSON(http.StatusOK, createdOrder)
}

// GetOrders --> GET /orders
func (h *OrderHandler) GetOrders(c echo.Context) error {
	orders, err := h.orderService.GetOrders(c.Request().Context())
	if err != nil {
		return serviceError(c, err, "Order")
	}
	return c.JSON(http.StatusOK, orders)
}

// GetOrder --> GET /orders/:id
func (h *OrderHandler) GetOrder(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}

	order, err := h.orderService.GetOrderByID(c.Request().Context(), id)
	if err != nil {
		return serviceError(c, err, "Order")
	}
	return c.JSON(http.StatusOK, order)
}

// UpdateOrder --> PUT /orders/:id
func (h *OrderHandler) UpdateOrder(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}

	var req entity.OrderRequest
	if err := bindRequest(c, &req); err != nil {
		return invalidPayload(c, err)
	}

	updatedOrder, err := h.orderService.UpdateOrder(c.Request().Context(), id, req)
	if err != nil {
		return serviceError(c, err, "Order")
	}
	return c.JSON(http.StatusOK, updatedOrder)
}

// DeleteOrder --> DELETE /orders/:id
func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}

	order, err := h.orderService.DeleteOrder(c.Request().Context(), id)
	if err != nil {
		return serviceError(c, err, "Order")
	}
	return c.JSON(http.StatusOK, order)
}

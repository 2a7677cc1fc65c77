package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"shop-service/internal/entity"
	"shop-service/internal/service"
)

type ProductHandler struct {
	productService *service.ProductService
}

// NewProductHandler creates a new instance of ProductHandler
func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// CreateProduct --> POST /products
func (ph *ProductHandler) CreateProduct(c echo.Context) error {
	var req entity.ProductRequest
	if err := bindRequest(c, &req); err != nil {
		return invalidPayload(c, err)
	}

	product, err := ph.productService.CreateProduct(c.Request().Context(), req)
	if err != nil {
		return serviceError(c, err, "Product")
	}
	return c.JSON(http.StatusOK, product)
}

// GetProducts --> GET /products
func (ph *ProductHandler) GetProducts(c echo.Context) error {
	products, err := ph.productService.GetProducts(c.Request().Context())
	if err != nil {
		return serviceError(c, err, "Product")
	}
	return c.JSON(http.StatusOK, products)
}

// GetProduct --> GET /products/:id
func (ph *ProductHandler) GetProduct(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}

	product, err := ph.productService.GetProductByID(c.Request().Context(), id)
	if err != nil {
		return serviceError(c, err, "Product")
	}
	return c.JSON(http.StatusOK, product)
}

// UpdateProduct --> PUT /products/:id
func (ph *ProductHandler) UpdateProduct(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}

	var req entity.ProductRequest
	if err := bindRequest(c, &req); err != nil {
		return invalidPayload(c, err)
	}

	product, err := ph.productService.UpdateProduct(c.Request().Context(), id, req)
	if err != nil {
		return serviceError(c, err, "Product")
	}
	return c.JSON(http.StatusOK, product)
}

// DeleteProduct --> DELETE /products/:id
func (ph *ProductHandler) DeleteProduct(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}

	product, err := ph.productService.DeleteProduct(c.Request().Context(), id)
	if err != nil {
		return serviceError(c, err, "Product")
	}
	return c.JSON(http.StatusOK, product)
}

// PreWarmupCache loads every product into the cache --> POST /products/warmup-cache
func (ph *ProductHandler) PreWarmupCache(c echo.Context) error {
	if err := ph.productService.PreWarmCache(c.Request().Context()); err != nil {
		return serviceError(c, err, "Product")
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Cache pre-warmed"})
}

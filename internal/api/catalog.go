package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"shop-service/internal/service"
)

type CatalogHandler struct {
	catalog *service.CatalogService
}

func NewCatalogHandler(catalog *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// Home --> GET /
func (h *CatalogHandler) Home(c echo.Context) error {
	return c.Render(http.StatusOK, "home", map[string]any{"Categories": h.catalog.Categories()})
}

// Category returns the handler for one fixed category page, e.g. GET /clothing.
func (h *CatalogHandler) Category(key string) echo.HandlerFunc {
	return func(c echo.Context) error {
		category, err := h.catalog.Category(key)
		if err != nil {
			return notFoundPage(c, "Category not found")
		}
		return c.Render(http.StatusOK, "category", map[string]any{"Category": category})
	}
}

// Product --> GET /product/:id. Unknown or malformed ids render 404.
func (h *CatalogHandler) Product(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return notFoundPage(c, "Product not found")
	}

	product, err := h.catalog.Product(id)
	if err != nil {
		return notFoundPage(c, "Product not found")
	}
	return c.Render(http.StatusOK, "product", map[string]any{"Product": product})
}

func notFoundPage(c echo.Context, msg string) error {
	return c.Render(http.StatusNotFound, "not_found", map[string]any{"Message": msg})
}

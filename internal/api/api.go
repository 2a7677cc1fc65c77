package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"shop-service/internal/entity"
)

func errorBody(msg string) map[string]string {
	return map[string]string{"error": msg}
}

// parseID reads the :id path parameter.
func parseID(c echo.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

func invalidID(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, errorBody("Invalid ID"))
}

// bindRequest binds the body into req and runs the registered validator.
func bindRequest(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return err
	}
	return c.Validate(req)
}

func invalidPayload(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, map[string]any{
		"error":   "Invalid request payload",
		"details": validationMessages(err),
	})
}

// serviceError maps service errors onto status codes. name is used for
// the not-found message, e.g. "User not found".
func serviceError(c echo.Context, err error, name string) error {
	switch {
	case errors.Is(err, entity.ErrNotFound):
		return c.JSON(http.StatusNotFound, errorBody(name+" not found"))
	case errors.Is(err, entity.ErrDuplicateEmail), errors.Is(err, entity.ErrDuplicateRequest):
		return c.JSON(http.StatusConflict, errorBody(err.Error()))
	case errors.Is(err, entity.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, errorBody(err.Error()))
	default:
		return c.JSON(http.StatusInternalServerError, errorBody(err.Error()))
	}
}

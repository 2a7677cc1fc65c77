package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"shop-service/internal/entity"
	"shop-service/internal/service"
)

type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates a new instance of UserHandler
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// CreateUser creates a new user --> POST /users
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req entity.UserRequest
	if err := bindRequest(c, &req); err != nil {
		return invalidPayload(c, err)
	}

	createdUser, err := h.userService.CreateUser(c.Request().Context(), req)
	if err != nil {
		return serviceError(c, err, "User")
	}
	return c.JSON(http.StatusOK, createdUser)
}

// GetUsers lists every user --> GET /users
func (h *UserHandler) GetUsers(c echo.Context) error {
	users, err := h.userService.GetUsers(c.Request().Context())
	if err != nil {
		return serviceError(c, err, "User")
	}
	return c.JSON(http.StatusOK, users)
}

// GetUserByID retrieves a user by ID --> GET /users/:id
func (h *UserHandler) GetUserByID(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}

	user, err := h.userService.GetUserByID(c.Request().Context(), id)
	if err != nil {
		return serviceError(c, err, "User")
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateUser replaces a user --> PUT /users/:id
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}

	var req entity.UserRequest
	if err := bindRequest(c, &req); err != nil {
		return invalidPayload(c, err)
	}

	user, err := h.userService.UpdateUser(c.Request().Context(), id, req)
	if err != nil {
		return serviceError(c, err, "User")
	}
	return c.JSON(http.StatusOK, user)
}

// DeleteUser removes a user and returns it --> DELETE /users/:id
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}

	user, err := h.userService.DeleteUser(c.Request().Context(), id)
	if err != nil {
		return serviceError(c, err, "User")
	}
	return c.JSON(http.StatusOK, user)
}

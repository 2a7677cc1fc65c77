package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"shop-service/internal/service"
)

type TokenRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Token exchanges credentials for a JWT --> POST /auth/token
func (h *AuthHandler) Token(c echo.Context) error {
	var req TokenRequest
	if err := bindRequest(c, &req); err != nil {
		return invalidPayload(c, err)
	}

	token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return serviceError(c, err, "User")
	}
	return c.JSON(http.StatusOK, map[string]string{"token": token})
}

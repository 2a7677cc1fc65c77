package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"shop-service/internal/entity"
	"shop-service/internal/service"
)

type RegistrationForm struct {
	FirstName       string `form:"first_name" validate:"required,max=100"`
	LastName        string `form:"last_name" validate:"required,max=100"`
	Email           string `form:"email" validate:"required,email,max=255"`
	Password        string `form:"password" validate:"required,min=6,max=72"`
	ConfirmPassword string `form:"confirm_password" validate:"required,eqfield=Password"`
}

func (f RegistrationForm) userRequest() entity.UserRequest {
	return entity.UserRequest{
		FirstName: f.FirstName,
		LastName:  f.LastName,
		Email:     f.Email,
		Password:  f.Password,
	}
}

type RegisterHandler struct {
	userService *service.UserService
}

func NewRegisterHandler(userService *service.UserService) *RegisterHandler {
	return &RegisterHandler{userService: userService}
}

// Form --> GET /register
func (h *RegisterHandler) Form(c echo.Context) error {
	return c.Render(http.StatusOK, "register", map[string]any{"Form": RegistrationForm{}})
}

// Register --> POST /register. Errors re-render the form; success redirects home.
func (h *RegisterHandler) Register(c echo.Context) error {
	var form RegistrationForm
	if err := bindRequest(c, &form); err != nil {
		return h.renderForm(c, http.StatusBadRequest, form, validationMessages(err))
	}

	if _, err := h.userService.Register(c.Request().Context(), form.userRequest()); err != nil {
		if errors.Is(err, entity.ErrDuplicateEmail) {
			return h.renderForm(c, http.StatusConflict, form, []string{"Email is already registered"})
		}
		return err
	}
	return c.Redirect(http.StatusFound, "/")
}

func (h *RegisterHandler) renderForm(c echo.Context, status int, form RegistrationForm, errs []string) error {
	form.Password = ""
	form.ConfirmPassword = ""
	return c.Render(status, "register", map[string]any{"Form": form, "Errors": errs})
}

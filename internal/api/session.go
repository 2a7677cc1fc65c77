package api

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
)

// SessionCookie holds "<name>,<email>" with each part query-escaped, so
// commas and non-ASCII names survive. It is neither signed nor encrypted.
const SessionCookie = "user_data"

type LoginForm struct {
	Name  string `form:"name" validate:"required"`
	Email string `form:"email" validate:"required"`
}

// SessionHandler implements the cookie-only login demo. The cookie is the
// only state; nothing is kept on the server.
type SessionHandler struct{}

func NewSessionHandler() *SessionHandler {
	return &SessionHandler{}
}

// LoginForm --> GET /login
func (h *SessionHandler) LoginForm(c echo.Context) error {
	return c.Render(http.StatusOK, "login", map[string]any{})
}

// Login --> POST /login
func (h *SessionHandler) Login(c echo.Context) error {
	var form LoginForm
	if err := bindRequest(c, &form); err != nil {
		return c.Render(http.StatusBadRequest, "login", map[string]any{
			"Name":   form.Name,
			"Email":  form.Email,
			"Errors": validationMessages(err),
		})
	}

	c.SetCookie(&http.Cookie{
		Name:  SessionCookie,
		Value: sessionValue(form.Name, form.Email),
		Path:  "/",
	})
	return c.Redirect(http.StatusFound, "/welcome")
}

// Welcome --> GET /welcome. A missing or unparsable cookie sends the user back to /login.
func (h *SessionHandler) Welcome(c echo.Context) error {
	cookie, err := c.Cookie(SessionCookie)
	if err != nil {
		return c.Redirect(http.StatusFound, "/login")
	}

	name, email, ok := parseSession(cookie.Value)
	if !ok {
		return c.Redirect(http.StatusFound, "/login")
	}
	return c.Render(http.StatusOK, "welcome", map[string]any{"Name": name, "Email": email})
}

// Logout --> GET /logout
func (h *SessionHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:   SessionCookie,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
	return c.Redirect(http.StatusFound, "/login")
}

func sessionValue(name, email string) string {
	return url.QueryEscape(name) + "," + url.QueryEscape(email)
}

func parseSession(value string) (name, email string, ok bool) {
	parts := strings.Split(value, ",")
	if len(parts) != 2 {
		return "", "", false
	}
	name, err := url.QueryUnescape(parts[0])
	if err != nil || name == "" {
		return "", "", false
	}
	email, err = url.QueryUnescape(parts[1])
	if err != nil || email == "" {
		return "", "", false
	}
	return name, email, true
}

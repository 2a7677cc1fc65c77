package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"shop-service/internal/service"
)

// Services are the dependencies handed to the handlers.
type Services struct {
	Users    *service.UserService
	Products *service.ProductService
	Orders   *service.OrderService
	Tasks    *service.TaskService
	Catalog  *service.CatalogService
	// Auth is optional; without it /auth/token is not registered and
	// AuthRequired cannot be set.
	Auth *service.AuthService
}

type Options struct {
	Logger zerolog.Logger

	RateLimitEnabled bool
	RateLimit        float64
	RateBurst        int
	RateExpiresIn    time.Duration

	// AuthRequired guards the JSON write routes with tokens from Services.Auth.
	AuthRequired bool
}

// NewServer builds the echo instance with middleware and every route.
func NewServer(svc Services, opts Options) (*echo.Echo, error) {
	renderer, err := NewTemplateRenderer()
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer
	e.Validator = NewRequestValidator()
	e.JSONSerializer = strictJSONSerializer{}

	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(requestLogger(opts.Logger))
	if opts.RateLimitEnabled {
		e.Use(middleware.RateLimiterWithConfig(rateLimiterConfig(opts)))
	}

	var guard []echo.MiddlewareFunc
	if opts.AuthRequired {
		if svc.Auth == nil {
			return nil, errors.New("auth required but no auth service configured")
		}
		guard = append(guard, jwtGuard(svc.Auth))
	}

	// Catalog
	catalogHandler := NewCatalogHandler(svc.Catalog)
	e.GET("/", catalogHandler.Home)
	e.GET("/clothing", catalogHandler.Category("clothing"))
	e.GET("/shoes", catalogHandler.Category("shoes"))
	e.GET("/product/:id", catalogHandler.Product)

	// Cookie session demo
	sessionHandler := NewSessionHandler()
	e.GET("/login", sessionHandler.LoginForm)
	e.POST("/login", sessionHandler.Login)
	e.GET("/welcome", sessionHandler.Welcome)
	e.GET("/logout", sessionHandler.Logout)

	// Registration
	registerHandler := NewRegisterHandler(svc.Users)
	e.GET("/register", registerHandler.Form)
	e.POST("/register", registerHandler.Register)

	// Users
	userHandler := NewUserHandler(svc.Users)
	e.GET("/users", userHandler.GetUsers)
	e.GET("/users/:id", userHandler.GetUserByID)
	e.POST("/users", userHandler.CreateUser, guard...)
	e.PUT("/users/:id", userHandler.UpdateUser, guard...)
	e.DELETE("/users/:id", userHandler.DeleteUser, guard...)

	// Products
	productHandler := NewProductHandler(svc.Products)
	e.GET("/products", productHandler.GetProducts)
	e.GET("/products/:id", productHandler.GetProduct)
	e.POST("/products", productHandler.CreateProduct, guard...)
	e.POST("/products/warmup-cache", productHandler.PreWarmupCache, guard...)
	e.PUT("/products/:id", productHandler.UpdateProduct, guard...)
	e.DELETE("/products/:id", productHandler.DeleteProduct, guard...)

	// Orders
	orderHandler := NewOrderHandler(svc.Orders)
	e.GET("/orders", orderHandler.GetOrders)
	e.GET("/orders/:id", orderHandler.GetOrder)
	e.POST("/orders", orderHandler.CreateOrder, guard...)
	e.PUT("/orders/:id", orderHandler.UpdateOrder, guard...)
	e.DELETE("/orders/:id", orderHandler.DeleteOrder, guard...)

	// Tasks
	taskHandler := NewTaskHandler(svc.Tasks)
	e.GET("/tasks", taskHandler.GetTasks)
	e.GET("/tasks/:id", taskHandler.GetTask)
	e.POST("/tasks", taskHandler.CreateTask, guard...)
	e.PUT("/tasks/:id", taskHandler.UpdateTask, guard...)
	e.DELETE("/tasks/:id", taskHandler.DeleteTask, guard...)
	e.GET("/app", taskHandler.App)

	if svc.Auth != nil {
		authHandler := NewAuthHandler(svc.Auth)
		e.POST("/auth/token", authHandler.Token)
	}

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":  "ok",
			"service": "shop-service",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	return e, nil
}

func requestLogger(logger zerolog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			ev := logger.Info()
			if v.Error != nil {
				ev = logger.Error().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}

func rateLimiterConfig(opts Options) middleware.RateLimiterConfig {
	return middleware.RateLimiterConfig{
		Skipper: middleware.DefaultSkipper,
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(
			middleware.RateLimiterMemoryStoreConfig{
				Rate:      rate.Limit(opts.RateLimit),
				Burst:     opts.RateBurst,
				ExpiresIn: opts.RateExpiresIn,
			}),
		IdentifierExtractor: func(context echo.Context) (string, error) {
			return context.RealIP(), nil
		},
		ErrorHandler: func(context echo.Context, err error) error {
			return context.JSON(http.StatusForbidden, errorBody("unable to identify client"))
		},
		DenyHandler: func(context echo.Context, identifier string, err error) error {
			return context.JSON(http.StatusTooManyRequests, errorBody("rate limit exceeded"))
		},
	}
}

// jwtGuard verifies bearer tokens with the same rules Login signs them with.
func jwtGuard(auth *service.AuthService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return auth.ParseToken(token)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusUnauthorized, errorBody("Unauthorized"))
		},
	})
}

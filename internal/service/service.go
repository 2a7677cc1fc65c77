package service

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"

	"shop-service/internal/entity"
	"shop-service/internal/events"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// SetLogger replaces the package logger, e.g. to apply the configured level.
func SetLogger(l zerolog.Logger) {
	logger = l
}

type UserRepository interface {
	GetUserByID(ctx context.Context, id int) (*entity.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	GetUsers(ctx context.Context) ([]*entity.User, error)
	CreateUser(ctx context.Context, user *entity.User) (*entity.User, error)
	UpdateUser(ctx context.Context, user *entity.User) (*entity.User, error)
	DeleteUser(ctx context.Context, id int) (*entity.User, error)
}

type ProductRepository interface {
	GetProductByID(ctx context.Context, id int) (*entity.Product, error)
	GetProducts(ctx context.Context) ([]*entity.Product, error)
	CreateProduct(ctx context.Context, product *entity.Product) (*entity.Product, error)
	UpdateProduct(ctx context.Context, product *entity.Product) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id int) (*entity.Product, error)
}

type OrderRepository interface {
	GetOrderByID(ctx context.Context, id int) (*entity.Order, error)
	GetOrders(ctx context.Context) ([]*entity.Order, error)
	CreateOrder(ctx context.Context, order *entity.Order) (*entity.Order, error)
	UpdateOrder(ctx context.Context, order *entity.Order) (*entity.Order, error)
	DeleteOrder(ctx context.Context, id int) (*entity.Order, error)
}

// TaskRepository is implemented by both the SQL and the in-memory task stores.
type TaskRepository interface {
	GetTaskByID(ctx context.Context, id int) (*entity.Task, error)
	GetTasks(ctx context.Context) ([]*entity.Task, error)
	CreateTask(ctx context.Context, task *entity.Task) (*entity.Task, error)
	UpdateTask(ctx context.Context, task *entity.Task) (*entity.Task, error)
	DeleteTask(ctx context.Context, id int) (*entity.Task, error)
}

type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	SetNX(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
}

type Publisher interface {
	Publish(ctx context.Context, ev events.Event) error
}

// publish sends an event and only logs failures; the change is already stored.
func publish(ctx context.Context, p Publisher, entityName, action string, id int, payload any) {
	ev := events.Event{Entity: entityName, Action: action, ID: id, Payload: payload}
	if err := p.Publish(ctx, ev); err != nil {
		logger.Error().Err(err).Msgf("Error publishing event %s", ev.Key())
	}
}

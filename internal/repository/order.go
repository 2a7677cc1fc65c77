package repository

import (
	"context"
	"database/sql"

	"shop-service/internal/entity"
)

const orderColumns = `id, user_id, product_id, order_date, status`

type OrderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db}
}

func scanOrder(row rowScanner) (*entity.Order, error) {
	order := &entity.Order{}
	err := row.Scan(&order.ID, &order.UserID, &order.ProductID, &order.OrderDate, &order.Status)
	if err != nil {
		return nil, notFound(err, entity.ErrNotFound)
	}
	return order, nil
}

func (r *OrderRepository) GetOrderByID(ctx context.Context, id int) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = ?`
	return scanOrder(r.db.QueryRowContext(ctx, query, id))
}

func (r *OrderRepository) GetOrders(ctx context.Context) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []*entity.Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

func (r *OrderRepository) CreateOrder(ctx context.Context, order *entity.Order) (*entity.Order, error) {
	query := `INSERT INTO orders (user_id, product_id, order_date, status) VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, order.UserID, order.ProductID, order.OrderDate, order.Status)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	order.ID = int(id)
	return order, nil
}

// UpdateOrder replaces every column of an existing order.
func (r *OrderRepository) UpdateOrder(ctx context.Context, order *entity.Order) (*entity.Order, error) {
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := scanOrder(tx.QueryRowContext(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = ?`, order.ID)); err != nil {
			return err
		}

		query := `UPDATE orders SET user_id = ?, product_id = ?, order_date = ?, status = ? WHERE id = ?`
		_, err := tx.ExecContext(ctx, query, order.UserID, order.ProductID, order.OrderDate, order.Status, order.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// DeleteOrder removes an order and returns the row as it was before deletion.
func (r *OrderRepository) DeleteOrder(ctx context.Context, id int) (*entity.Order, error) {
	var deleted *entity.Order
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		order, err := scanOrder(tx.QueryRowContext(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = ?`, id))
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM orders WHERE id = ?`, id); err != nil {
			return err
		}
		deleted = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

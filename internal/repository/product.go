package repository

import (
	"context"
	"database/sql"

	"shop-service/internal/entity"
)

const productColumns = `id, name, description, price`

type ProductRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db}
}

func scanProduct(row rowScanner) (*entity.Product, error) {
	product := &entity.Product{}
	err := row.Scan(&product.ID, &product.Name, &product.Description, &product.Price)
	if err != nil {
		return nil, notFound(err, entity.ErrNotFound)
	}
	return product, nil
}

func (r *ProductRepository) GetProductByID(ctx context.Context, id int) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = ?`
	return scanProduct(r.db.QueryRowContext(ctx, query, id))
}

func (r *ProductRepository) GetProducts(ctx context.Context) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []*entity.Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, rows.Err()
}

func (r *ProductRepository) CreateProduct(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	query := `INSERT INTO products (name, description, price) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, product.Name, product.Description, product.Price)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	product.ID = int(id)
	return product, nil
}

func (r *ProductRepository) UpdateProduct(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := scanProduct(tx.QueryRowContext(ctx, `SELECT `+productColumns+` FROM products WHERE id = ?`, product.ID)); err != nil {
			return err
		}

		query := `UPDATE products SET name = ?, description = ?, price = ? WHERE id = ?`
		_, err := tx.ExecContext(ctx, query, product.Name, product.Description, product.Price, product.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (r *ProductRepository) DeleteProduct(ctx context.Context, id int) (*entity.Product, error) {
	var deleted *entity.Product
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		product, err := scanProduct(tx.QueryRowContext(ctx, `SELECT `+productColumns+` FROM products WHERE id = ?`, id))
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id); err != nil {
			return err
		}
		deleted = product
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

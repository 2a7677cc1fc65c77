package migrations

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Dialect selects the DDL flavour used when creating tables.
type Dialect string

const (
	MySQL  Dialect = "mysql"
	SQLite Dialect = "sqlite"
)

var retryDelay = 1 * time.Second

type table struct {
	name   string
	mysql  string
	sqlite string
}

var tables = []table{
	{
		name: "users",
		mysql: `
		CREATE TABLE IF NOT EXISTS users (
			id INT AUTO_INCREMENT PRIMARY KEY,
			first_name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL,
			email VARCHAR(255) NOT NULL UNIQUE,
			password VARCHAR(255) NOT NULL
		);`,
		sqlite: `
		CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL
		);`,
	},
	{
		name: "products",
		mysql: `
		CREATE TABLE IF NOT EXISTS products (
			id INT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			description TEXT NOT NULL,
			price DOUBLE NOT NULL
		);`,
		sqlite: `
		CREATE TABLE IF NOT EXISTS products (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			description TEXT NOT NULL,
			price REAL NOT NULL
		);`,
	},
	{
		name: "orders",
		mysql: `
		CREATE TABLE IF NOT EXISTS orders (
			id INT AUTO_INCREMENT PRIMARY KEY,
			user_id INT NOT NULL,
			product_id INT NOT NULL,
			order_date VARCHAR(64) NOT NULL,
			status VARCHAR(20) NOT NULL
		);`,
		sqlite: `
		CREATE TABLE IF NOT EXISTS orders (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER NOT NULL,
			product_id INTEGER NOT NULL,
			order_date TEXT NOT NULL,
			status TEXT NOT NULL
		);`,
	},
	{
		name: "tasks",
		mysql: `
		CREATE TABLE IF NOT EXISTS tasks (
			id INT AUTO_INCREMENT PRIMARY KEY,
			title VARCHAR(255) NOT NULL,
			description TEXT NOT NULL,
			status BOOLEAN NOT NULL DEFAULT FALSE
		);`,
		sqlite: `
		CREATE TABLE IF NOT EXISTS tasks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			status INTEGER NOT NULL DEFAULT 0
		);`,
	},
}

// AutoMigrate creates every table the service needs if it does not exist.
// Each statement is retried up to retries extra times before giving up.
func AutoMigrate(ctx context.Context, db *sql.DB, dialect Dialect, retries int) error {
	for _, t := range tables {
		var query string
		switch dialect {
		case MySQL:
			query = t.mysql
		case SQLite:
			query = t.sqlite
		default:
			return fmt.Errorf("unsupported dialect %q", dialect)
		}

		if err := execWithRetry(ctx, db, query, retries); err != nil {
			return fmt.Errorf("create table %s: %w", t.name, err)
		}
	}
	return nil
}

func execWithRetry(ctx context.Context, db *sql.DB, query string, retries int) error {
	_, err := db.ExecContext(ctx, query)
	for i := 0; err != nil && i < retries; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(retryDelay):
		}
		_, err = db.ExecContext(ctx, query)
	}
	return err
}

package repository

import (
	"context"
	"database/sql"

	"shop-service/internal/entity"
)

const userColumns = `id, first_name, last_name, email, password`

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db}
}

func scanUser(row rowScanner) (*entity.User, error) {
	user := &entity.User{}
	err := row.Scan(&user.ID, &user.FirstName, &user.LastName, &user.Email, &user.Password)
	if err != nil {
		return nil, notFound(err, entity.ErrNotFound)
	}
	return user, nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id int) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = ?`
	return scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = ?`
	return scanUser(r.db.QueryRowContext(ctx, query, email))
}

func (r *UserRepository) GetUsers(ctx context.Context) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []*entity.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// CreateUser inserts a user. A taken email yields entity.ErrDuplicateEmail;
// uniqueness is left to the users.email index.
func (r *UserRepository) CreateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	query := `INSERT INTO users (first_name, last_name, email, password) VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, user.FirstName, user.LastName, user.Email, user.Password)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, entity.ErrDuplicateEmail
		}
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	user.ID = int(id)
	return user, nil
}

func (r *UserRepository) UpdateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := scanUser(tx.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, user.ID)); err != nil {
			return err
		}

		query := `UPDATE users SET first_name = ?, last_name = ?, email = ?, password = ? WHERE id = ?`
		_, err := tx.ExecContext(ctx, query, user.FirstName, user.LastName, user.Email, user.Password, user.ID)
		if isUniqueViolation(err) {
			return entity.ErrDuplicateEmail
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) DeleteUser(ctx context.Context, id int) (*entity.User, error) {
	var deleted *entity.User
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		user, err := scanUser(tx.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id))
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id); err != nil {
			return err
		}
		deleted = user
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

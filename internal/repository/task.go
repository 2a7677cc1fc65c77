package repository

import (
	"context"
	"database/sql"

	"shop-service/internal/entity"
)

const taskColumns = `id, title, description, status`

// TaskRepository stores tasks in the tasks table.
type TaskRepository struct {
	db *sql.DB
}

func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{db}
}

func scanTask(row rowScanner) (*entity.Task, error) {
	task := &entity.Task{}
	err := row.Scan(&task.ID, &task.Title, &task.Description, &task.Status)
	if err != nil {
		return nil, notFound(err, entity.ErrNotFound)
	}
	return task, nil
}

func (r *TaskRepository) GetTaskByID(ctx context.Context, id int) (*entity.Task, error) {
	return scanTask(r.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id))
}

func (r *TaskRepository) GetTasks(ctx context.Context) ([]*entity.Task, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+taskColumns+` FROM tasks ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []*entity.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

func (r *TaskRepository) CreateTask(ctx context.Context, task *entity.Task) (*entity.Task, error) {
	query := `INSERT INTO tasks (title, description, status) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, task.Title, task.Description, task.Status)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	task.ID = int(id)
	return task, nil
}

func (r *TaskRepository) UpdateTask(ctx context.Context, task *entity.Task) (*entity.Task, error) {
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := scanTask(tx.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, task.ID)); err != nil {
			return err
		}

		query := `UPDATE tasks SET title = ?, description = ?, status = ? WHERE id = ?`
		_, err := tx.ExecContext(ctx, query, task.Title, task.Description, task.Status, task.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return task, nil
}

func (r *TaskRepository) DeleteTask(ctx context.Context, id int) (*entity.Task, error) {
	var deleted *entity.Task
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		task, err := scanTask(tx.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id))
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id); err != nil {
			return err
		}
		deleted = task
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

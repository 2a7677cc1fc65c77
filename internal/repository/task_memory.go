package repository

import (
	"context"
	"sync"

	"shop-service/internal/entity"
)

// TaskMemoryRepository keeps tasks in a process-local slice. Nothing
// survives a restart. Ids come from a counter, so an id is never handed
// out twice even after deletions.
type TaskMemoryRepository struct {
	mu     sync.RWMutex
	tasks  []entity.Task
	nextID int
}

func NewTaskMemoryRepository() *TaskMemoryRepository {
	return &TaskMemoryRepository{nextID: 1}
}

func (r *TaskMemoryRepository) indexOf(id int) int {
	for i := range r.tasks {
		if r.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *TaskMemoryRepository) GetTaskByID(_ context.Context, id int) (*entity.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, entity.ErrNotFound
	}
	task := r.tasks[i]
	return &task, nil
}

func (r *TaskMemoryRepository) GetTasks(_ context.Context) ([]*entity.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := make([]*entity.Task, 0, len(r.tasks))
	for i := range r.tasks {
		task := r.tasks[i]
		tasks = append(tasks, &task)
	}
	return tasks, nil
}

func (r *TaskMemoryRepository) CreateTask(_ context.Context, task *entity.Task) (*entity.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task.ID = r.nextID
	r.nextID++
	r.tasks = append(r.tasks, *task)
	return task, nil
}

func (r *TaskMemoryRepository) UpdateTask(_ context.Context, task *entity.Task) (*entity.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(task.ID)
	if i < 0 {
		return nil, entity.ErrNotFound
	}
	r.tasks[i] = *task
	return task, nil
}

func (r *TaskMemoryRepository) DeleteTask(_ context.Context, id int) (*entity.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, entity.ErrNotFound
	}
	deleted := r.tasks[i]
	r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
	return &deleted, nil
}

package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shop-service/internal/entity"
)

type taskStore interface {
	GetTaskByID(ctx context.Context, id int) (*entity.Task, error)
	GetTasks(ctx context.Context) ([]*entity.Task, error)
	CreateTask(ctx context.Context, task *entity.Task) (*entity.Task, error)
	UpdateTask(ctx context.Context, task *entity.Task) (*entity.Task, error)
	DeleteTask(ctx context.Context, id int) (*entity.Task, error)
}

func taskStores(t *testing.T) map[string]taskStore {
	return map[string]taskStore{
		"memory": NewTaskMemoryRepository(),
		"sql":    NewTaskRepository(newTestDB(t)),
	}
}

func TestTaskStores_CRUD(t *testing.T) {
	for name, repo := range taskStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			created, err := repo.CreateTask(ctx, &entity.Task{Title: "buy milk", Description: "2 litres"})
			require.NoError(t, err)
			assert.Equal(t, 1, created.ID)

			got, err := repo.GetTaskByID(ctx, created.ID)
			require.NoError(t, err)
			assert.Equal(t, &entity.Task{ID: 1, Title: "buy milk", Description: "2 litres"}, got)

			_, err = repo.UpdateTask(ctx, &entity.Task{ID: created.ID, Title: "buy bread", Status: true})
			require.NoError(t, err)
			got, err = repo.GetTaskByID(ctx, created.ID)
			require.NoError(t, err)
			assert.Equal(t, &entity.Task{ID: 1, Title: "buy bread", Status: true}, got)

			_, err = repo.UpdateTask(ctx, &entity.Task{ID: 99, Title: "nope"})
			assert.ErrorIs(t, err, entity.ErrNotFound)

			deleted, err := repo.DeleteTask(ctx, created.ID)
			require.NoError(t, err)
			assert.Equal(t, "buy bread", deleted.Title)

			_, err = repo.DeleteTask(ctx, created.ID)
			assert.ErrorIs(t, err, entity.ErrNotFound)

			tasks, err := repo.GetTasks(ctx)
			require.NoError(t, err)
			assert.Empty(t, tasks)
		})
	}
}

func TestTaskMemoryRepository_IDsNotReused(t *testing.T) {
	repo := NewTaskMemoryRepository()
	ctx := context.Background()

	first, _ := repo.CreateTask(ctx, &entity.Task{Title: "a"})
	second, _ := repo.CreateTask(ctx, &entity.Task{Title: "b"})
	_, err := repo.DeleteTask(ctx, first.ID)
	require.NoError(t, err)

	third, _ := repo.CreateTask(ctx, &entity.Task{Title: "c"})
	assert.NotEqual(t, second.ID, third.ID)
	assert.Equal(t, 3, third.ID)
}

func TestTaskMemoryRepository_ConcurrentCreates(t *testing.T) {
	repo := NewTaskMemoryRepository()
	ctx := context.Background()
	const n = 200

	var wg sync.WaitGroup
	ids := make(chan int, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			task, err := repo.CreateTask(ctx, &entity.Task{Title: "t"})
			if err == nil {
				ids <- task.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[int]bool{}
	for id := range ids {
		seen[id] = true
	}
	assert.Len(t, seen, n)

	tasks, err := repo.GetTasks(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, n)
}

func TestTaskMemoryRepository_ReturnsCopies(t *testing.T) {
	repo := NewTaskMemoryRepository()
	ctx := context.Background()

	created, _ := repo.CreateTask(ctx, &entity.Task{Title: "original"})
	got, _ := repo.GetTaskByID(ctx, created.ID)
	got.Title = "mutated"

	again, _ := repo.GetTaskByID(ctx, created.ID)
	assert.Equal(t, "original", again.Title)
}

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shop-service/internal/entity"
	"shop-service/internal/repository"
)

func TestTaskService_CRUD(t *testing.T) {
	pub := newMockPublisher()
	svc := NewTaskService(repository.NewTaskMemoryRepository(), pub)
	ctx := context.Background()

	created, err := svc.CreateTask(ctx, entity.TaskRequest{Title: "write docs", Description: "api"})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)

	updated, err := svc.UpdateTask(ctx, created.ID, entity.TaskRequest{Title: "write docs", Status: true})
	require.NoError(t, err)
	assert.True(t, updated.Status)
	assert.Empty(t, updated.Description)

	got, err := svc.GetTaskByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)

	_, err = svc.DeleteTask(ctx, created.ID)
	require.NoError(t, err)
	_, err = svc.GetTaskByID(ctx, created.ID)
	assert.ErrorIs(t, err, entity.ErrNotFound)

	tasks, err := svc.GetTasks(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)

	assert.Equal(t, []string{"task-created-1", "task-updated-1", "task-deleted-1"}, pub.keys())
}

package service

import (
	"context"
	"errors"

	"shop-service/internal/entity"
	"shop-service/internal/events"
)

type TaskService struct {
	repo      TaskRepository
	publisher Publisher
}

func NewTaskService(repo TaskRepository, publisher Publisher) *TaskService {
	return &TaskService{repo: repo, publisher: publisher}
}

func (s *TaskService) GetTaskByID(ctx context.Context, id int) (*entity.Task, error) {
	return s.repo.GetTaskByID(ctx, id)
}

func (s *TaskService) GetTasks(ctx context.Context) ([]*entity.Task, error) {
	tasks, err := s.repo.GetTasks(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing tasks")
		return nil, err
	}
	return tasks, nil
}

func (s *TaskService) CreateTask(ctx context.Context, req entity.TaskRequest) (*entity.Task, error) {
	task, err := s.repo.CreateTask(ctx, entity.NewTask(req))
	if err != nil {
		logger.Error().Err(err).Msg("Error creating task")
		return nil, err
	}

	publish(ctx, s.publisher, "task", events.ActionCreated, task.ID, task)
	return task, nil
}

func (s *TaskService) UpdateTask(ctx context.Context, id int, req entity.TaskRequest) (*entity.Task, error) {
	task := entity.NewTask(req)
	task.ID = id

	updated, err := s.repo.UpdateTask(ctx, task)
	if err != nil {
		if !errors.Is(err, entity.ErrNotFound) {
			logger.Error().Err(err).Msgf("Error updating task %d", id)
		}
		return nil, err
	}

	publish(ctx, s.publisher, "task", events.ActionUpdated, updated.ID, updated)
	return updated, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id int) (*entity.Task, error) {
	deleted, err := s.repo.DeleteTask(ctx, id)
	if err != nil {
		if !errors.Is(err, entity.ErrNotFound) {
			logger.Error().Err(err).Msgf("Error deleting task %d", id)
		}
		return nil, err
	}

	publish(ctx, s.publisher, "task", events.ActionDeleted, deleted.ID, deleted)
	return deleted, nil
}

package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"shop-service/internal/entity"
	"shop-service/internal/service"
)

type TaskHandler struct {
	taskService *service.TaskService
}

func NewTaskHandler(taskService *service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) GetTasks(c echo.Context) error {
	tasks, err := h.taskService.GetTasks(c.Request().Context())
	if err != nil {
		return serviceError(c, err, "Task")
	}
	return c.JSON(http.StatusOK, tasks)
}

func (h *TaskHandler) GetTask(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}

	task, err := h.taskService.GetTaskByID(c.Request().Context(), id)
	if err != nil {
		return serviceError(c, err, "Task")
	}
	return c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) CreateTask(c echo.Context) error {
	var req entity.TaskRequest
	if err := bindRequest(c, &req); err != nil {
		return invalidPayload(c, err)
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), req)
	if err != nil {
		return serviceError(c, err, "Task")
	}
	return c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) UpdateTask(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}

	var req entity.TaskRequest
	if err := bindRequest(c, &req); err != nil {
		return invalidPayload(c, err)
	}

	task, err := h.taskService.UpdateTask(c.Request().Context(), id, req)
	if err != nil {
		return serviceError(c, err, "Task")
	}
	return c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) DeleteTask(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}

	task, err := h.taskService.DeleteTask(c.Request().Context(), id)
	if err != nil {
		return serviceError(c, err, "Task")
	}
	return c.JSON(http.StatusOK, task)
}

// App renders the task list as HTML --> GET /app
func (h *TaskHandler) App(c echo.Context) error {
	tasks, err := h.taskService.GetTasks(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "tasks", map[string]any{"Tasks": tasks})
}

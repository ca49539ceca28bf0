package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskboard/core/internal/infrastructure/logger"
	"github.com/taskboard/core/internal/ports"
)

// TaskHandler handles task-related requests
type TaskHandler struct {
	taskService ports.TaskService
	logger      *logger.Logger
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskService ports.TaskService, logger *logger.Logger) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		logger:      logger,
	}
}

// CreateTask godoc
// @Summary Create a task
// @Description Create a task in the To Do column of a project
// @Tags tasks
// @Accept json
// @Produce json
// @Param projectId path int true "Project ID"
// @Param request body ports.CreateTaskRequest true "Task data"
// @Success 200 {object} entities.Task
// @Failure 404 {object} MessageResponse
// @Router /projects/{projectId}/tasks [post]
func (h *TaskHandler) CreateTask(c echo.Context) error {
	projectID, ok := parseID(c, "projectId")
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, msgProjectNotFound)
	}

	var req ports.CreateTaskRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), projectID, req)
	if err != nil {
		return toHTTPError(err, h.logger)
	}

	return c.JSON(http.StatusOK, task)
}

// AddComment godoc
// @Summary Comment on a task
// @Tags tasks
// @Accept json
// @Produce json
// @Param projectId path int true "Project ID"
// @Param taskId path int true "Task ID"
// @Param request body ports.AddCommentRequest true "Comment"
// @Success 200 {object} entities.Task
// @Failure 404 {object} MessageResponse
// @Router /projects/{projectId}/tasks/{taskId}/comments [post]
func (h *TaskHandler) AddComment(c echo.Context) error {
	projectID, taskID, err := taskPath(c)
	if err != nil {
		return err
	}

	var req ports.AddCommentRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	task, err := h.taskService.AddComment(c.Request().Context(), projectID, taskID, req)
	if err != nil {
		return toHTTPError(err, h.logger)
	}

	return c.JSON(http.StatusOK, task)
}

// MoveTask godoc
// @Summary Move a task to another column
// @Tags tasks
// @Accept json
// @Produce json
// @Param projectId path int true "Project ID"
// @Param taskId path int true "Task ID"
// @Param request body ports.MoveTaskRequest true "Target status"
// @Success 200 {object} entities.Task
// @Failure 400 {object} MessageResponse
// @Failure 404 {object} MessageResponse
// @Router /projects/{projectId}/tasks/{taskId}/move [put]
func (h *TaskHandler) MoveTask(c echo.Context) error {
	projectID, taskID, err := taskPath(c)
	if err != nil {
		return err
	}

	var req ports.MoveTaskRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	task, err := h.taskService.MoveTask(c.Request().Context(), projectID, taskID, req)
	if err != nil {
		return toHTTPError(err, h.logger)
	}

	return c.JSON(http.StatusOK, task)
}

func taskPath(c echo.Context) (int64, int64, error) {
	projectID, ok := parseID(c, "projectId")
	if !ok {
		return 0, 0, echo.NewHTTPError(http.StatusNotFound, msgProjectNotFound)
	}
	taskID, ok := parseID(c, "taskId")
	if !ok {
		return 0, 0, echo.NewHTTPError(http.StatusNotFound, msgTaskNotFound)
	}
	return projectID, taskID, nil
}

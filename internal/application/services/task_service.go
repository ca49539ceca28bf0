package services

import (
	"context"
	"fmt"

	"github.com/taskboard/core/internal/domain/entities"
	"github.com/taskboard/core/internal/infrastructure/logger"
	"github.com/taskboard/core/internal/infrastructure/metrics"
	"github.com/taskboard/core/internal/ports"
)

// TaskService handles tasks and their comments
type TaskService struct {
	projectRepo  ports.ProjectRepository
	metrics      *metrics.Metrics
	logger       *logger.Logger
	strictStatus bool
}

// TaskServiceOption configures a TaskService
type TaskServiceOption func(*TaskService)

// WithStrictStatus limits MoveTask to the known board columns
func WithStrictStatus(strict bool) TaskServiceOption {
	return func(s *TaskService) {
		s.strictStatus = strict
	}
}

// NewTaskService creates a new task service
func NewTaskService(projectRepo ports.ProjectRepository, m *metrics.Metrics, logger *logger.Logger, opts ...TaskServiceOption) *TaskService {
	s := &TaskService{
		projectRepo: projectRepo,
		metrics:     m,
		logger:      logger.WithComponent("task_service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.TaskService = (*TaskService)(nil)

// CreateTask adds a task to a project
func (s *TaskService) CreateTask(ctx context.Context, projectID int64, req ports.CreateTaskRequest) (*entities.Task, error) {
	task, err := s.projectRepo.CreateTask(ctx, projectID, req.Title, req.Assignee)
	if err != nil {
		return nil, fmt.Errorf("create task in project %d: %w", projectID, err)
	}

	s.metrics.TaskCreated()
	s.logger.Infow("Task created",
		"project_id", projectID,
		"task_id", task.ID,
		"assignee", task.Assignee,
	)

	return task, nil
}

// AddComment appends a comment and returns the updated task
func (s *TaskService) AddComment(ctx context.Context, projectID, taskID int64, req ports.AddCommentRequest) (*entities.Task, error) {
	task, err := s.projectRepo.AddComment(ctx, projectID, taskID, req.User, req.Text)
	if err != nil {
		return nil, fmt.Errorf("comment on task %d in project %d: %w", taskID, projectID, err)
	}

	s.metrics.CommentAdded()
	s.logger.Infow("Comment added",
		"project_id", projectID,
		"task_id", taskID,
		"user", req.User,
		"comments", len(task.Comments),
	)

	return task, nil
}

// MoveTask changes a task's status. Any value is accepted unless strict
// status checking is enabled.
func (s *TaskService) MoveTask(ctx context.Context, projectID, taskID int64, req ports.MoveTaskRequest) (*entities.Task, error) {
	known := entities.IsKnownStatus(req.Status)
	if s.strictStatus && !known {
		return nil, fmt.Errorf("%w %q", entities.ErrInvalidStatus, req.Status)
	}

	task, err := s.projectRepo.MoveTask(ctx, projectID, taskID, req.Status)
	if err != nil {
		return nil, fmt.Errorf("move task %d in project %d: %w", taskID, projectID, err)
	}

	s.metrics.TaskMoved(task.Status, known)
	s.logger.Infow("Task moved",
		"project_id", projectID,
		"task_id", taskID,
		"status", task.Status,
	)

	return task, nil
}

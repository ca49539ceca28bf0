package ports

import (
	"context"

	"github.com/taskboard/core/internal/domain/entities"
)

// UserService interface for user registration
type UserService interface {
	Register(ctx context.Context, req RegisterUserRequest) (*entities.User, error)
	ListUsers(ctx context.Context) ([]entities.User, error)
}

// ProjectService interface for project operations
type ProjectService interface {
	CreateProject(ctx context.Context, req CreateProjectRequest) (*entities.Project, error)
	GetProject(ctx context.Context, id int64) (*entities.Project, error)
	ListProjects(ctx context.Context) ([]entities.Project, error)
}

// TaskService interface for task operations
type TaskService interface {
	CreateTask(ctx context.Context, projectID int64, req CreateTaskRequest) (*entities.Task, error)
	AddComment(ctx context.Context, projectID, taskID int64, req AddCommentRequest) (*entities.Task, error)
	MoveTask(ctx context.Context, projectID, taskID int64, req MoveTaskRequest) (*entities.Task, error)
}

// Request/Response Types

type RegisterUserRequest struct {
	Username string `json:"username" validate:"required"`
}

type CreateProjectRequest struct {
	Name string `json:"name"`
}

type CreateTaskRequest struct {
	Title    string `json:"title"`
	Assignee string `json:"assignee"`
}

type AddCommentRequest struct {
	User string `json:"user"`
	Text string `json:"text"`
}

type MoveTaskRequest struct {
	Status string `json:"status"`
}

type RegisterUserResponse struct {
	Message string         `json:"message"`
	User    *entities.User `json:"user"`
}

package ports

import (
	"context"

	"github.com/taskboard/core/internal/domain/entities"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	RegisterUser(ctx context.Context, username string) (*entities.User, error)
	ListUsers(ctx context.Context) ([]entities.User, error)
}

// ProjectRepository defines the interface for project and task data operations.
// Tasks and comments are reached through their owning project.
type ProjectRepository interface {
	CreateProject(ctx context.Context, name string) (*entities.Project, error)
	GetProject(ctx context.Context, id int64) (*entities.Project, error)
	ListProjects(ctx context.Context) ([]entities.Project, error)
	CreateTask(ctx context.Context, projectID int64, title, assignee string) (*entities.Task, error)
	AddComment(ctx context.Context, projectID, taskID int64, user, text string) (*entities.Task, error)
	MoveTask(ctx context.Context, projectID, taskID int64, status string) (*entities.Task, error)
}

// Store is the full in-memory data store
type Store interface {
	UserRepository
	ProjectRepository
	Counts(ctx context.Context) entities.Counts
	Reset(ctx context.Context)
}

// IDGenerator hands out entity identifiers. Implementations must never
// return the same id twice during a process lifetime.
type IDGenerator interface {
	NextID() int64
}

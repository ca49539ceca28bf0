package services

import (
	"context"
	"fmt"

	"github.com/taskboard/core/internal/domain/entities"
	"github.com/taskboard/core/internal/infrastructure/logger"
	"github.com/taskboard/core/internal/infrastructure/metrics"
	"github.com/taskboard/core/internal/ports"
)

// ProjectService handles project-related operations
type ProjectService struct {
	projectRepo ports.ProjectRepository
	metrics     *metrics.Metrics
	logger      *logger.Logger
}

// NewProjectService creates a new project service
func NewProjectService(projectRepo ports.ProjectRepository, m *metrics.Metrics, logger *logger.Logger) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		metrics:     m,
		logger:      logger.WithComponent("project_service"),
	}
}

var _ ports.ProjectService = (*ProjectService)(nil)

// CreateProject creates a new project. The name is not validated.
func (s *ProjectService) CreateProject(ctx context.Context, req ports.CreateProjectRequest) (*entities.Project, error) {
	project, err := s.projectRepo.CreateProject(ctx, req.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	s.metrics.ProjectCreated()
	s.logger.Infow("Project created", "project_id", project.ID, "name", project.Name)

	return project, nil
}

// GetProject retrieves a project by ID
func (s *ProjectService) GetProject(ctx context.Context, id int64) (*entities.Project, error) {
	project, err := s.projectRepo.GetProject(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get project %d: %w", id, err)
	}
	return project, nil
}

// ListProjects returns all projects in creation order
func (s *ProjectService) ListProjects(ctx context.Context) ([]entities.Project, error) {
	projects, err := s.projectRepo.ListProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskboard/core/internal/infrastructure/logger"
	"github.com/taskboard/core/internal/ports"
)

// ProjectHandler handles project-related requests
type ProjectHandler struct {
	projectService ports.ProjectService
	logger         *logger.Logger
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService ports.ProjectService, logger *logger.Logger) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		logger:         logger,
	}
}

// CreateProject godoc
// @Summary Create a new project
// @Description Create an empty project board
// @Tags projects
// @Accept json
// @Produce json
// @Param request body ports.CreateProjectRequest true "Project data"
// @Success 200 {object} entities.Project
// @Failure 400 {object} MessageResponse
// @Router /projects [post]
func (h *ProjectHandler) CreateProject(c echo.Context) error {
	var req ports.CreateProjectRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	project, err := h.projectService.CreateProject(c.Request().Context(), req)
	if err != nil {
		return toHTTPError(err, h.logger)
	}

	return c.JSON(http.StatusOK, project)
}

// ListProjects godoc
// @Summary List projects
// @Description List every project with its tasks and comments
// @Tags projects
// @Produce json
// @Success 200 {array} entities.Project
// @Router /projects [get]
func (h *ProjectHandler) ListProjects(c echo.Context) error {
	projects, err := h.projectService.ListProjects(c.Request().Context())
	if err != nil {
		return toHTTPError(err, h.logger)
	}
	return c.JSON(http.StatusOK, projects)
}

// GetProject godoc
// @Summary Get project by ID
// @Tags projects
// @Produce json
// @Param projectId path int true "Project ID"
// @Success 200 {object} entities.Project
// @Failure 404 {object} MessageResponse
// @Router /projects/{projectId} [get]
func (h *ProjectHandler) GetProject(c echo.Context) error {
	projectID, ok := parseID(c, "projectId")
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, msgProjectNotFound)
	}

	project, err := h.projectService.GetProject(c.Request().Context(), projectID)
	if err != nil {
		return toHTTPError(err, h.logger)
	}

	return c.JSON(http.StatusOK, project)
}

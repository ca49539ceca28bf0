package http

import "github.com/labstack/echo/v4"

// Handlers groups the handlers mounted by RegisterRoutes
type Handlers struct {
	Users    *UserHandler
	Projects *ProjectHandler
	Tasks    *TaskHandler
}

// RegisterRoutes mounts the board API on g
func RegisterRoutes(g *echo.Group, h Handlers) {
	g.POST("/register", h.Users.Register)
	g.GET("/users", h.Users.ListUsers)

	projects := g.Group("/projects")
	projects.GET("", h.Projects.ListProjects)
	projects.POST("", h.Projects.CreateProject)
	projects.GET("/:projectId", h.Projects.GetProject)

	projects.POST("/:projectId/tasks", h.Tasks.CreateTask)
	projects.POST("/:projectId/tasks/:taskId/comments", h.Tasks.AddComment)
	projects.PUT("/:projectId/tasks/:taskId/move", h.Tasks.MoveTask)
}

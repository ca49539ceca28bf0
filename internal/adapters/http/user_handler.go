package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskboard/core/internal/infrastructure/logger"
	"github.com/taskboard/core/internal/ports"
)

// UserHandler handles user-related requests
type UserHandler struct {
	userService ports.UserService
	logger      *logger.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService ports.UserService, logger *logger.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// Register godoc
// @Summary Register a user
// @Description Register a user by nickname
// @Tags users
// @Accept json
// @Produce json
// @Param request body ports.RegisterUserRequest true "Username"
// @Success 200 {object} ports.RegisterUserResponse
// @Failure 400 {object} MessageResponse
// @Router /register [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req ports.RegisterUserRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	user, err := h.userService.Register(c.Request().Context(), req)
	if err != nil {
		return toHTTPError(err, h.logger)
	}

	return c.JSON(http.StatusOK, ports.RegisterUserResponse{
		Message: msgUserRegistered,
		User:    user,
	})
}

// ListUsers returns all registered users
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.userService.ListUsers(c.Request().Context())
	if err != nil {
		return toHTTPError(err, h.logger)
	}
	return c.JSON(http.StatusOK, users)
}

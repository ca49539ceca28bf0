package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/taskboard/core/internal/domain/entities"
	"github.com/taskboard/core/internal/infrastructure/logger"
	"github.com/taskboard/core/internal/infrastructure/metrics"
	"github.com/taskboard/core/internal/ports"
)

// UserService handles user registration
type UserService struct {
	userRepo ports.UserRepository
	metrics  *metrics.Metrics
	logger   *logger.Logger
}

// NewUserService creates a new user service
func NewUserService(userRepo ports.UserRepository, m *metrics.Metrics, logger *logger.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		metrics:  m,
		logger:   logger.WithComponent("user_service"),
	}
}

var _ ports.UserService = (*UserService)(nil)

// Register creates a user. Only presence of the username is checked.
func (s *UserService) Register(ctx context.Context, req ports.RegisterUserRequest) (*entities.User, error) {
	if err := validateRequest(req); err != nil {
		s.logger.Debugw("Registration rejected", "error", err)
		return nil, entities.ErrUsernameRequired
	}

	user, err := s.userRepo.RegisterUser(ctx, req.Username)
	if err != nil {
		if errors.Is(err, entities.ErrInvalidInput) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	s.metrics.UserRegistered()
	s.logger.Infow("User registered", "user_id", user.ID, "username", user.Username)

	return user, nil
}

// ListUsers returns every registered user
func (s *UserService) ListUsers(ctx context.Context) ([]entities.User, error) {
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

package repository

import (
	"context"
	"sync"
	"time"

	"github.com/taskboard/core/internal/domain/entities"
	"github.com/taskboard/core/internal/ports"
)

// MemoryStore keeps users and projects in process memory. A single lock
// guards both collections; reads hand out deep copies.
type MemoryStore struct {
	mu       sync.RWMutex
	users    []entities.User
	projects []entities.Project
	ids      ports.IDGenerator
	now      func() time.Time
}

// Option configures a MemoryStore
type Option func(*MemoryStore)

// WithIDGenerator overrides the default sequence
func WithIDGenerator(ids ports.IDGenerator) Option {
	return func(s *MemoryStore) {
		s.ids = ids
	}
}

// WithClock overrides the clock used to stamp comments
func WithClock(now func() time.Time) Option {
	return func(s *MemoryStore) {
		s.now = now
	}
}

// NewMemoryStore creates an empty store
func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{
		users:    []entities.User{},
		projects: []entities.Project{},
		ids:      NewSequence(0),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.Store = (*MemoryStore)(nil)

// RegisterUser appends a new user
func (s *MemoryStore) RegisterUser(ctx context.Context, username string) (*entities.User, error) {
	if username == "" {
		return nil, entities.ErrUsernameRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user := entities.User{ID: s.ids.NextID(), Username: username}
	s.users = append(s.users, user)
	return &user, nil
}

// ListUsers returns all users in registration order
func (s *MemoryStore) ListUsers(ctx context.Context) ([]entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]entities.User, len(s.users))
	copy(users, s.users)
	return users, nil
}

// CreateProject appends a new project with no tasks
func (s *MemoryStore) CreateProject(ctx context.Context, name string) (*entities.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	project := entities.NewProject(s.ids.NextID(), name)
	s.projects = append(s.projects, project)

	out := project.Clone()
	return &out, nil
}

// GetProject returns a copy of one project
func (s *MemoryStore) GetProject(ctx context.Context, id int64) (*entities.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p := s.findProject(id)
	if p == nil {
		return nil, entities.ErrProjectNotFound
	}
	out := p.Clone()
	return &out, nil
}

// ListProjects returns every project with nested tasks and comments, in
// creation order
func (s *MemoryStore) ListProjects(ctx context.Context) ([]entities.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	projects := make([]entities.Project, len(s.projects))
	for i, p := range s.projects {
		projects[i] = p.Clone()
	}
	return projects, nil
}

// CreateTask appends a task to the project's task list
func (s *MemoryStore) CreateTask(ctx context.Context, projectID int64, title, assignee string) (*entities.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findProject(projectID)
	if p == nil {
		return nil, entities.ErrProjectNotFound
	}

	task := entities.NewTask(s.ids.NextID(), title, assignee)
	p.Tasks = append(p.Tasks, task)

	out := task.Clone()
	return &out, nil
}

// AddComment appends a comment stamped with the current time
func (s *MemoryStore) AddComment(ctx context.Context, projectID, taskID int64, user, text string) (*entities.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, err := s.findTask(projectID, taskID)
	if err != nil {
		return nil, err
	}

	task.Comments = append(task.Comments, entities.Comment{
		User: user,
		Text: text,
		Date: s.now(),
	})

	out := task.Clone()
	return &out, nil
}

// MoveTask overwrites the task status. The value is not checked.
func (s *MemoryStore) MoveTask(ctx context.Context, projectID, taskID int64, status string) (*entities.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, err := s.findTask(projectID, taskID)
	if err != nil {
		return nil, err
	}

	task.Status = status

	out := task.Clone()
	return &out, nil
}

// Counts reports collection sizes
func (s *MemoryStore) Counts(ctx context.Context) entities.Counts {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c := entities.Counts{Users: len(s.users), Projects: len(s.projects)}
	for _, p := range s.projects {
		c.Tasks += len(p.Tasks)
	}
	return c
}

// Reset drops all users and projects. Ids keep increasing.
func (s *MemoryStore) Reset(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = []entities.User{}
	s.projects = []entities.Project{}
}

// findProject must be called with s.mu held
func (s *MemoryStore) findProject(id int64) *entities.Project {
	for i := range s.projects {
		if s.projects[i].ID == id {
			return &s.projects[i]
		}
	}
	return nil
}

// findTask must be called with s.mu held
func (s *MemoryStore) findTask(projectID, taskID int64) (*entities.Task, error) {
	p := s.findProject(projectID)
	if p == nil {
		return nil, entities.ErrProjectNotFound
	}

	i := p.FindTask(taskID)
	if i < 0 {
		return nil, entities.ErrTaskNotFound
	}
	return &p.Tasks[i], nil
}

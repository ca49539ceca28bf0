package entities

import (
	"errors"
	"fmt"
	"time"
)

// Error kinds. Every error the store or services return wraps one of these.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

// Common errors
var (
	ErrUsernameRequired = fmt.Errorf("%w: username required", ErrInvalidInput)
	ErrInvalidStatus    = fmt.Errorf("%w: invalid status", ErrInvalidInput)
	ErrProjectNotFound  = fmt.Errorf("project %w", ErrNotFound)
	ErrTaskNotFound     = fmt.Errorf("task %w", ErrNotFound)
)

// Task statuses. Status is a free-form label; these are the board columns.
const (
	TaskStatusTodo       = "To Do"
	TaskStatusInProgress = "In Progress"
	TaskStatusDone       = "Done"
)

// DefaultAssignee is used when a task is created without an assignee.
const DefaultAssignee = "Unassigned"

// KnownStatuses lists the board columns in left-to-right order.
var KnownStatuses = []string{TaskStatusTodo, TaskStatusInProgress, TaskStatusDone}

// IsKnownStatus reports whether status is one of the board columns.
func IsKnownStatus(status string) bool {
	for _, s := range KnownStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// User represents a registered user
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// Project represents a board holding tasks
type Project struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Tasks []Task `json:"tasks"`
}

// Task represents a unit of work owned by exactly one project
type Task struct {
	ID       int64     `json:"id"`
	Title    string    `json:"title"`
	Status   string    `json:"status"`
	Assignee string    `json:"assignee"`
	Comments []Comment `json:"comments"`
}

// Comment is an immutable note appended to a task
type Comment struct {
	User string    `json:"user"`
	Text string    `json:"text"`
	Date time.Time `json:"date"`
}

// NewProject builds a project with an empty task list.
func NewProject(id int64, name string) Project {
	return Project{
		ID:    id,
		Name:  name,
		Tasks: []Task{},
	}
}

// NewTask builds a task in the To Do column. An empty assignee becomes
// DefaultAssignee.
func NewTask(id int64, title, assignee string) Task {
	if assignee == "" {
		assignee = DefaultAssignee
	}
	return Task{
		ID:       id,
		Title:    title,
		Status:   TaskStatusTodo,
		Assignee: assignee,
		Comments: []Comment{},
	}
}

// FindTask returns the index of the task with the given id, or -1.
func (p *Project) FindTask(id int64) int {
	for i := range p.Tasks {
		if p.Tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy of the project.
func (p Project) Clone() Project {
	tasks := make([]Task, len(p.Tasks))
	for i, t := range p.Tasks {
		tasks[i] = t.Clone()
	}
	p.Tasks = tasks
	return p
}

// Clone returns a deep copy of the task.
func (t Task) Clone() Task {
	comments := make([]Comment, len(t.Comments))
	copy(comments, t.Comments)
	t.Comments = comments
	return t
}

// Counts summarises the number of entities held by a store.
type Counts struct {
	Users    int `json:"users"`
	Projects int `json:"projects"`
	Tasks    int `json:"tasks"`
}

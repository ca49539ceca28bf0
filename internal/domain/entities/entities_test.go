package entities

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewTaskDefaults(t *testing.T) {
	task := NewTask(7, "Write spec", "")

	assert.Equal(t, int64(7), task.ID)
	assert.Equal(t, TaskStatusTodo, task.Status)
	assert.Equal(t, DefaultAssignee, task.Assignee)
	assert.NotNil(t, task.Comments)
	assert.Empty(t, task.Comments)

	assert.Equal(t, "bob", NewTask(8, "x", "bob").Assignee)
}

func TestErrorKinds(t *testing.T) {
	assert.True(t, errors.Is(ErrProjectNotFound, ErrNotFound))
	assert.True(t, errors.Is(ErrTaskNotFound, ErrNotFound))
	assert.True(t, errors.Is(ErrUsernameRequired, ErrInvalidInput))
	assert.True(t, errors.Is(ErrInvalidStatus, ErrInvalidInput))
	assert.False(t, errors.Is(ErrProjectNotFound, ErrInvalidInput))
	assert.Equal(t, "project not found", ErrProjectNotFound.Error())
}

func TestIsKnownStatus(t *testing.T) {
	for _, s := range KnownStatuses {
		assert.True(t, IsKnownStatus(s), s)
	}
	assert.False(t, IsKnownStatus("Blocked"))
	assert.False(t, IsKnownStatus(""))
}

func TestProjectCloneIsDeep(t *testing.T) {
	p := NewProject(1, "board")
	p.Tasks = append(p.Tasks, NewTask(2, "t", ""))
	p.Tasks[0].Comments = append(p.Tasks[0].Comments, Comment{User: "alice", Text: "hi", Date: time.Now()})

	c := p.Clone()
	c.Tasks[0].Status = TaskStatusDone
	c.Tasks[0].Comments[0].Text = "changed"
	c.Tasks = append(c.Tasks, NewTask(3, "u", ""))

	assert.Equal(t, TaskStatusTodo, p.Tasks[0].Status)
	assert.Equal(t, "hi", p.Tasks[0].Comments[0].Text)
	assert.Len(t, p.Tasks, 1)
}

func TestFindTask(t *testing.T) {
	p := NewProject(1, "board")
	p.Tasks = append(p.Tasks, NewTask(2, "a", ""), NewTask(3, "b", ""))

	assert.Equal(t, 1, p.FindTask(3))
	assert.Equal(t, -1, p.FindTask(99))
}

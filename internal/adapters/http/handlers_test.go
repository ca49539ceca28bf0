package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskboard/core/internal/adapters/repository"
	"github.com/taskboard/core/internal/application/services"
	"github.com/taskboard/core/internal/domain/entities"
	"github.com/taskboard/core/internal/infrastructure/logger"
)

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()
	store := repository.NewMemoryStore()
	log := logger.NewNop()

	e := echo.New()
	RegisterRoutes(e.Group(""), Handlers{
		Users:    NewUserHandler(services.NewUserService(store, nil, log), log),
		Projects: NewProjectHandler(services.NewProjectService(store, nil, log), log),
		Tasks:    NewTaskHandler(services.NewTaskService(store, nil, log), log),
	})
	return e
}

func do(t *testing.T, e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestRegister(t *testing.T) {
	e := newTestEcho(t)

	rec := do(t, e, http.MethodPost, "/register", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, msgUsernameRequired, decode[MessageResponse](t, rec).Message)

	rec = do(t, e, http.MethodPost, "/register", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, e, http.MethodPost, "/register", `{"username":"alice"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[struct {
		Message string        `json:"message"`
		User    entities.User `json:"user"`
	}](t, rec)
	assert.Equal(t, msgUserRegistered, body.Message)
	assert.Equal(t, "alice", body.User.Username)
	assert.NotZero(t, body.User.ID)

	rec = do(t, e, http.MethodGet, "/users", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]entities.User](t, rec), 1)
}

func TestRegisterMalformedJSON(t *testing.T) {
	e := newTestEcho(t)

	for _, body := range []string{`{"username":`, `{"username":5}`} {
		rec := do(t, e, http.MethodPost, "/register", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.Equal(t, msgInvalidRequest, decode[MessageResponse](t, rec).Message, body)
	}
}

func TestNonJSONBodyIsIgnored(t *testing.T) {
	e := newTestEcho(t)

	post := func(path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMETextPlain)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	rec := post("/register", "username=alice")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, msgUsernameRequired, decode[MessageResponse](t, rec).Message)

	rec = post("/projects", "name=Website")
	require.Equal(t, http.StatusOK, rec.Code)
	project := decode[entities.Project](t, rec)
	assert.Equal(t, "", project.Name)
	assert.NotZero(t, project.ID)
}

func TestBoardFlow(t *testing.T) {
	e := newTestEcho(t)

	rec := do(t, e, http.MethodPost, "/projects", `{"name":"Website"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	project := decode[entities.Project](t, rec)
	assert.Equal(t, "Website", project.Name)
	assert.Contains(t, rec.Body.String(), `"tasks":[]`)

	base := "/projects/" + itoa(project.ID)

	rec = do(t, e, http.MethodPost, base+"/tasks", `{"title":"Write spec","assignee":""}`)
	require.Equal(t, http.StatusOK, rec.Code)
	task := decode[entities.Task](t, rec)
	assert.Equal(t, entities.TaskStatusTodo, task.Status)
	assert.Equal(t, entities.DefaultAssignee, task.Assignee)
	assert.Contains(t, rec.Body.String(), `"comments":[]`)

	taskPath := base + "/tasks/" + itoa(task.ID)

	rec = do(t, e, http.MethodPost, taskPath+"/comments", `{"user":"alice","text":"lgtm"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	task = decode[entities.Task](t, rec)
	require.Len(t, task.Comments, 1)
	assert.Equal(t, "alice", task.Comments[0].User)
	assert.False(t, task.Comments[0].Date.IsZero())

	rec = do(t, e, http.MethodPut, taskPath+"/move", `{"status":"In Progress"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, entities.TaskStatusInProgress, decode[entities.Task](t, rec).Status)

	rec = do(t, e, http.MethodGet, "/projects", "")
	require.Equal(t, http.StatusOK, rec.Code)
	projects := decode[[]entities.Project](t, rec)
	require.Len(t, projects, 1)
	require.Len(t, projects[0].Tasks, 1)
	assert.Equal(t, entities.TaskStatusInProgress, projects[0].Tasks[0].Status)
	assert.Len(t, projects[0].Tasks[0].Comments, 1)

	rec = do(t, e, http.MethodGet, base, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, project.ID, decode[entities.Project](t, rec).ID)
}

func TestNotFound(t *testing.T) {
	e := newTestEcho(t)
	rec := do(t, e, http.MethodPost, "/projects", `{"name":"Website"}`)
	project := decode[entities.Project](t, rec)
	base := "/projects/" + itoa(project.ID)
	rec = do(t, e, http.MethodPost, base+"/tasks", `{"title":"t"}`)
	task := decode[entities.Task](t, rec)

	tests := []struct {
		name    string
		method  string
		path    string
		body    string
		message string
	}{
		{"task on missing project", http.MethodPost, "/projects/999/tasks", `{"title":"t"}`, msgProjectNotFound},
		{"task on non-numeric project", http.MethodPost, "/projects/abc/tasks", `{"title":"t"}`, msgProjectNotFound},
		{"get missing project", http.MethodGet, "/projects/999", "", msgProjectNotFound},
		{"comment on missing project", http.MethodPost, "/projects/999/tasks/" + itoa(task.ID) + "/comments", `{"user":"a"}`, msgProjectNotFound},
		{"comment on missing task", http.MethodPost, base + "/tasks/999/comments", `{"user":"a"}`, msgTaskNotFound},
		{"move on missing project", http.MethodPut, "/projects/999/tasks/" + itoa(task.ID) + "/move", `{"status":"Done"}`, msgProjectNotFound},
		{"move on missing task", http.MethodPut, base + "/tasks/999/move", `{"status":"Done"}`, msgTaskNotFound},
		{"move on non-numeric task", http.MethodPut, base + "/tasks/x/move", `{"status":"Done"}`, msgTaskNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(t, e, tc.method, tc.path, tc.body)
			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Equal(t, tc.message, decode[MessageResponse](t, rec).Message)
		})
	}

	rec = do(t, e, http.MethodGet, base, "")
	got := decode[entities.Project](t, rec)
	require.Len(t, got.Tasks, 1)
	assert.Equal(t, entities.TaskStatusTodo, got.Tasks[0].Status)
	assert.Empty(t, got.Tasks[0].Comments)
}

func TestStrictStatusRejected(t *testing.T) {
	store := repository.NewMemoryStore()
	log := logger.NewNop()
	e := echo.New()
	RegisterRoutes(e.Group(""), Handlers{
		Users:    NewUserHandler(services.NewUserService(store, nil, log), log),
		Projects: NewProjectHandler(services.NewProjectService(store, nil, log), log),
		Tasks:    NewTaskHandler(services.NewTaskService(store, nil, log, services.WithStrictStatus(true)), log),
	})

	project := decode[entities.Project](t, do(t, e, http.MethodPost, "/projects", `{"name":"p"}`))
	task := decode[entities.Task](t, do(t, e, http.MethodPost, "/projects/"+itoa(project.ID)+"/tasks", `{"title":"t"}`))

	rec := do(t, e, http.MethodPut, "/projects/"+itoa(project.ID)+"/tasks/"+itoa(task.ID)+"/move", `{"status":"Blocked"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, msgInvalidStatus, decode[MessageResponse](t, rec).Message)
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

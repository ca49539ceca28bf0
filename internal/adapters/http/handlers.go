package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/taskboard/core/internal/domain/entities"
	"github.com/taskboard/core/internal/infrastructure/logger"
)

// Messages returned to clients
const (
	msgInvalidRequest   = "Invalid request format"
	msgUsernameRequired = "Username required"
	msgProjectNotFound  = "Project not found"
	msgTaskNotFound     = "Task not found"
	msgInvalidStatus    = "Invalid status"
	msgUserRegistered   = "User registered"
)

// MessageResponse is the body of every error reply
type MessageResponse struct {
	Message string `json:"message"`
}

// parseID normalizes a path identifier. Anything that is not an integer
// cannot name an entity.
func parseID(c echo.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// toHTTPError maps domain errors onto HTTP errors
func toHTTPError(err error, log *logger.Logger) error {
	switch {
	case errors.Is(err, entities.ErrProjectNotFound):
		return echo.NewHTTPError(http.StatusNotFound, msgProjectNotFound)
	case errors.Is(err, entities.ErrTaskNotFound):
		return echo.NewHTTPError(http.StatusNotFound, msgTaskNotFound)
	case errors.Is(err, entities.ErrUsernameRequired):
		return echo.NewHTTPError(http.StatusBadRequest, msgUsernameRequired)
	case errors.Is(err, entities.ErrInvalidStatus):
		return echo.NewHTTPError(http.StatusBadRequest, msgInvalidStatus)
	case errors.Is(err, entities.ErrInvalidInput):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, entities.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		log.Errorw("Unexpected error", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError).SetInternal(err)
	}
}

// bindBody decodes a JSON request body into req. Bodies of any other
// content type are ignored and leave req at its zero value.
func bindBody(c echo.Context, req interface{}) error {
	ctype := c.Request().Header.Get(echo.HeaderContentType)
	if !strings.HasPrefix(ctype, echo.MIMEApplicationJSON) {
		return nil
	}

	if err := (&echo.DefaultBinder{}).BindBody(c, req); err != nil {
		var he *echo.HTTPError
		if errors.As(err, &he) {
			err = he.Internal
			if err == nil {
				err = fmt.Errorf("bind body: %v", he.Message)
			}
		}
		return echo.NewHTTPError(http.StatusBadRequest, msgInvalidRequest).SetInternal(err)
	}
	return nil
}

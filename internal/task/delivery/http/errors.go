package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"taskscape/internal/task"
	"taskscape/pkg/response"
)

var errIDRequired = errors.New("id is required")

// respondError translates task domain errors into HTTP responses.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		response.NotFound(c, err)
	case errors.Is(err, task.ErrParentNotFound),
		errors.Is(err, task.ErrEmptyTitle),
		errors.Is(err, task.ErrInvalidStatus),
		errors.Is(err, task.ErrSelfParent),
		errors.Is(err, task.ErrCyclicParent):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}

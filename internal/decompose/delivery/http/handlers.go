package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"taskscape/internal/decompose"
	"taskscape/pkg/response"
)

var errIDRequired = errors.New("id is required")

// Suggest godoc
// @Summary     Suggest a decomposition for a task
// @Description Analyzes the task description and structure, resolves a
// @Description decomposition strategy, and returns suggested subtask stubs.
// @Description Nothing is persisted.
// @Tags        Decomposition
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} suggestResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id}/decomposition [GET]
func (h *handler) Suggest(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errIDRequired, nil)
		return
	}

	output, err := h.uc.Suggest(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Suggest: %v", err)
		if errors.Is(err, decompose.ErrTaskNotFound) {
			response.NotFound(c, err)
			return
		}
		response.InternalError(c, err)
		return
	}

	response.OK(c, newSuggestResp(output))
}

// Apply godoc
// @Summary     Apply a decomposition to a task
// @Description Runs the same analysis as the suggestion endpoint and persists
// @Description the resulting stubs as real subtasks of the task.
// @Tags        Decomposition
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} applyResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id}/decomposition [POST]
func (h *handler) Apply(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errIDRequired, nil)
		return
	}

	output, err := h.uc.Apply(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Apply: %v", err)
		if errors.Is(err, decompose.ErrTaskNotFound) {
			response.NotFound(c, err)
			return
		}
		response.InternalError(c, err)
		return
	}

	response.OK(c, newApplyResp(output))
}

package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"taskscape/internal/scene"
	"taskscape/pkg/response"
)

var errIDRequired = errors.New("id is required")

// Scene godoc
// @Summary     Get the 3D scene for a task tree
// @Description Builds the deterministic spatial layout for the task and its
// @Description subtasks: node positions, sizes, colors, and one connection per
// @Description parent→child edge.
// @Tags        Scene
// @Accept      json
// @Produce     json
// @Param       id path string true "Root task ID"
// @Success     200 {object} sceneResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id}/scene [GET]
func (h *handler) Scene(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errIDRequired, nil)
		return
	}

	output, err := h.uc.Scene(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Scene: %v", err)
		if errors.Is(err, scene.ErrTaskNotFound) {
			response.NotFound(c, err)
			return
		}
		response.InternalError(c, err)
		return
	}

	response.OK(c, newSceneResp(output))
}

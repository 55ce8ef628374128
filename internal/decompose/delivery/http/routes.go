package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.GET("/tasks/:id/decomposition", h.Suggest)
	rg.POST("/tasks/:id/decomposition", h.Apply)
}

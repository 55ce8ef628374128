package http

import (
	"github.com/gin-gonic/gin"

	"taskscape/internal/scene"
	"taskscape/pkg/log"
)

// Handler is the public interface for the scene HTTP delivery layer.
type Handler interface {
	Scene(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc scene.UseCase
}

// New creates a new HTTP handler for the scene domain.
func New(l log.Logger, uc scene.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}

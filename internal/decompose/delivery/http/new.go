package http

import (
	"github.com/gin-gonic/gin"

	"taskscape/internal/decompose"
	"taskscape/pkg/log"
)

// Handler is the public interface for the decompose HTTP delivery layer.
type Handler interface {
	Suggest(c *gin.Context)
	Apply(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc decompose.UseCase
}

// New creates a new HTTP handler for the decompose domain.
func New(l log.Logger, uc decompose.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}

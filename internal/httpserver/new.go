package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"taskscape/internal/scene"
	sceneUC "taskscape/internal/scene/usecase"
	"taskscape/internal/task/repository"
	"taskscape/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Shared storage for all domains
	repo repository.Repository

	// Layout and cache tuning
	layout          scene.BuilderConfig
	sceneCache      sceneUC.Config
	rateLimitPerMin int

	// Resources released on shutdown
	closers []func()
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Repository repository.Repository

	Layout          scene.BuilderConfig
	SceneCache      sceneUC.Config
	RateLimitPerMin int
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.Default(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		repo:            cfg.Repository,
		layout:          cfg.Layout,
		sceneCache:      cfg.SceneCache,
		rateLimitPerMin: cfg.RateLimitPerMin,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.repo == nil {
		return errors.New("repository is required")
	}
	return nil
}

package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	decomposeHTTP "taskscape/internal/decompose/delivery/http"
	decomposeUC "taskscape/internal/decompose/usecase"
	"taskscape/internal/scene"
	sceneHTTP "taskscape/internal/scene/delivery/http"
	sceneUC "taskscape/internal/scene/usecase"
	taskHTTP "taskscape/internal/task/delivery/http"
	taskUC "taskscape/internal/task/usecase"
)

// setupTaskDomain initializes task CRUD and registers its routes.
//
// Pattern followed by every domain:
//  1. Create UseCase:      uc := mydomainUC.New(srv.repo, srv.l)
//  2. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  3. Register Routes:     mydomainHTTP.RegisterRoutes(api, h)
func (srv *HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup) error {
	uc := taskUC.New(srv.repo, srv.l)
	h := taskHTTP.New(srv.l, uc)
	taskHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Task domain registered")
	return nil
}

// setupSceneDomain wires the layout builder and the cached scene use case.
// The use case holds a store subscription, so its Close is queued for
// shutdown.
func (srv *HTTPServer) setupSceneDomain(ctx context.Context, api *gin.RouterGroup) error {
	builder := scene.NewBuilder(srv.layout)
	uc := sceneUC.New(srv.repo, builder, srv.l, srv.sceneCache)
	srv.closers = append(srv.closers, uc.Close)

	h := sceneHTTP.New(srv.l, uc)
	sceneHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Scene domain registered")
	return nil
}

// setupDecomposeDomain initializes the decomposition advisor endpoints.
func (srv *HTTPServer) setupDecomposeDomain(ctx context.Context, api *gin.RouterGroup) error {
	uc := decomposeUC.New(srv.repo, srv.l)
	h := decomposeHTTP.New(srv.l, uc)
	decomposeHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Decompose domain registered")
	return nil
}

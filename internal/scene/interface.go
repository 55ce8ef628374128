package scene

import "context"

// UseCase defines the business logic interface for the scene domain.
type UseCase interface {
	// Scene builds (or serves from cache) the renderable scene for the
	// task tree rooted at taskID.
	Scene(ctx context.Context, taskID string) (SceneOutput, error)
}

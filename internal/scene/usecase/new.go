package usecase

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"taskscape/internal/model"
	"taskscape/internal/scene"
	"taskscape/internal/task/repository"
	"taskscape/pkg/log"
)

const (
	defaultCacheSize = 256
	defaultCacheTTL  = 5 * time.Minute
)

// Config tunes the scene cache.
type Config struct {
	CacheSize int
	CacheTTL  time.Duration
}

// implUseCase is the private implementation of scene.UseCase.
// Built scenes are cached per root task; tree construction is deterministic,
// so a cached scene is indistinguishable from a fresh build.
type implUseCase struct {
	repo    repository.Repository
	builder scene.Builder
	cache   *expirable.LRU[string, scene.SceneOutput]
	l       log.Logger

	unsubscribe func()
}

// New creates a scene UseCase and starts listening for store mutations to
// invalidate cached scenes. Call Close to release the subscription.
func New(repo repository.Repository, builder scene.Builder, l log.Logger, cfg Config) *implUseCase {
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = defaultCacheSize
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = defaultCacheTTL
	}

	uc := &implUseCase{
		repo:    repo,
		builder: builder,
		cache:   expirable.NewLRU[string, scene.SceneOutput](cfg.CacheSize, nil, cfg.CacheTTL),
		l:       l,
	}

	events, cancel := repo.Subscribe(64)
	uc.unsubscribe = cancel
	go uc.invalidateLoop(events)

	return uc
}

// Close releases the store subscription, which also ends the invalidation
// loop when the event channel closes.
func (uc *implUseCase) Close() {
	if uc.unsubscribe != nil {
		uc.unsubscribe()
	}
}

// invalidateLoop drops cached scenes when the store changes. A mutation can
// reshape any ancestor tree, so the whole cache is purged rather than
// chasing the changed task's root.
func (uc *implUseCase) invalidateLoop(events <-chan model.TaskEvent) {
	for event := range events {
		uc.cache.Purge()
		uc.l.Debugf(context.Background(), "scene cache purged after %s of task %s", event.Type, event.TaskID)
	}
}

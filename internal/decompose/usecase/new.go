package usecase

import (
	"taskscape/internal/task/repository"
	"taskscape/pkg/log"
)

// implUseCase is the private implementation of decompose.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new decompose UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}

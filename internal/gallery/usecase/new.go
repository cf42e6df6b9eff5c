package usecase

import (
	"github.com/nghia89/landingpage-wedding-sub000/internal/gallery/repository"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/log"
)

// implUseCase is the private implementation of gallery.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new gallery UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{repo: repo, l: l}
}

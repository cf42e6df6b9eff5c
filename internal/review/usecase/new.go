package usecase

import (
	"github.com/nghia89/landingpage-wedding-sub000/internal/review/repository"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/log"
)

// implUseCase is the private implementation of review.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new review UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{repo: repo, l: l}
}

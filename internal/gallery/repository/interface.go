package repository

import (
	"context"

	"github.com/nghia89/landingpage-wedding-sub000/internal/gallery"
)

// Repository is the data store interface for the gallery domain.
type Repository interface {
	CreateImage(ctx context.Context, opt CreateImageOptions) (gallery.Image, error)
	GetOneImage(ctx context.Context, id string) (gallery.Image, error)
	ListImages(ctx context.Context, opt ListImagesOptions) ([]gallery.Image, int, error)
	UpdateImage(ctx context.Context, opt UpdateImageOptions) (gallery.Image, error)
	DeleteImage(ctx context.Context, id string) error
	CountImages(ctx context.Context) (int, error)
}

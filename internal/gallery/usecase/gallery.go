package usecase

import (
	"context"
	"net/url"

	"github.com/nghia89/landingpage-wedding-sub000/internal/gallery"
	repo "github.com/nghia89/landingpage-wedding-sub000/internal/gallery/repository"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/paging"
)

// Create validates the image URL and persists a new gallery image.
func (uc *implUseCase) Create(ctx context.Context, input gallery.CreateImageInput) (gallery.CreateImageOutput, error) {
	if !validImageURL(input.ImageURL) {
		return gallery.CreateImageOutput{}, gallery.ErrInvalidURL
	}

	img, err := uc.repo.CreateImage(ctx, repo.CreateImageOptions{
		Title:     input.Title,
		ImageURL:  input.ImageURL,
		Category:  input.Category,
		SortOrder: input.SortOrder,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateImage: %v", err)
		return gallery.CreateImageOutput{}, err
	}
	return gallery.CreateImageOutput{Image: img}, nil
}

// List returns a paginated list of gallery images. The page is clamped
// against the counted total inside the repository.
func (uc *implUseCase) List(ctx context.Context, input gallery.ListImagesInput) (gallery.ListImagesOutput, error) {
	page, limit := paging.Normalize(input.Page, input.Limit)

	images, total, err := uc.repo.ListImages(ctx, repo.ListImagesOptions{
		Category: input.Category,
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListImages: %v", err)
		return gallery.ListImagesOutput{}, err
	}

	p := paging.New(page, limit, total)
	return gallery.ListImagesOutput{
		Images: images,
		Total:  total,
		Page:   p.Page,
		Limit:  p.Limit,
	}, nil
}

// Detail retrieves a single image by ID.
func (uc *implUseCase) Detail(ctx context.Context, id string) (gallery.DetailImageOutput, error) {
	img, err := uc.repo.GetOneImage(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneImage: %v", err)
		return gallery.DetailImageOutput{}, err
	}
	if img.ID == "" {
		return gallery.DetailImageOutput{}, gallery.ErrImageNotFound
	}
	return gallery.DetailImageOutput{Image: img}, nil
}

// Update modifies an existing gallery image (partial update).
func (uc *implUseCase) Update(ctx context.Context, input gallery.UpdateImageInput) (gallery.UpdateImageOutput, error) {
	existing, err := uc.repo.GetOneImage(ctx, input.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneImage: %v", err)
		return gallery.UpdateImageOutput{}, err
	}
	if existing.ID == "" {
		return gallery.UpdateImageOutput{}, gallery.ErrImageNotFound
	}

	if input.ImageURL != "" && !validImageURL(input.ImageURL) {
		return gallery.UpdateImageOutput{}, gallery.ErrInvalidURL
	}

	sortOrder := existing.SortOrder
	if input.SortOrder != nil {
		sortOrder = *input.SortOrder
	}

	img, err := uc.repo.UpdateImage(ctx, repo.UpdateImageOptions{
		ID:        input.ID,
		Title:     coalesce(input.Title, existing.Title),
		ImageURL:  coalesce(input.ImageURL, existing.ImageURL),
		Category:  coalesce(input.Category, existing.Category),
		SortOrder: sortOrder,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateImage: %v", err)
		return gallery.UpdateImageOutput{}, err
	}
	return gallery.UpdateImageOutput{Image: img}, nil
}

// Delete removes a gallery image by ID.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	existing, err := uc.repo.GetOneImage(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneImage: %v", err)
		return err
	}
	if existing.ID == "" {
		return gallery.ErrImageNotFound
	}
	if err := uc.repo.DeleteImage(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteImage: %v", err)
		return err
	}
	return nil
}

// CountAll returns the gallery size (dashboard).
func (uc *implUseCase) CountAll(ctx context.Context) (int, error) {
	return uc.repo.CountImages(ctx)
}

// validImageURL accepts absolute http(s) URLs only.
func validImageURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func coalesce(newVal, existing string) string {
	if newVal != "" {
		return newVal
	}
	return existing
}

package usecase

import (
	"context"

	"github.com/nghia89/landingpage-wedding-sub000/internal/review"
	repo "github.com/nghia89/landingpage-wedding-sub000/internal/review/repository"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/paging"
)

// Create validates and persists a new review.
func (uc *implUseCase) Create(ctx context.Context, input review.CreateReviewInput) (review.CreateReviewOutput, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return review.CreateReviewOutput{}, review.ErrInvalidRating
	}

	rv, err := uc.repo.CreateReview(ctx, repo.CreateReviewOptions{
		CustomerName: input.CustomerName,
		Rating:       input.Rating,
		Content:      input.Content,
		IsApproved:   input.IsApproved,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateReview: %v", err)
		return review.CreateReviewOutput{}, err
	}
	return review.CreateReviewOutput{Review: rv}, nil
}

// List returns a paginated list of reviews. The page is clamped against the
// counted total inside the repository.
func (uc *implUseCase) List(ctx context.Context, input review.ListReviewsInput) (review.ListReviewsOutput, error) {
	page, limit := paging.Normalize(input.Page, input.Limit)

	reviews, total, err := uc.repo.ListReviews(ctx, repo.ListReviewsOptions{
		Rating:   input.Rating,
		Approved: input.Approved,
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListReviews: %v", err)
		return review.ListReviewsOutput{}, err
	}

	p := paging.New(page, limit, total)
	return review.ListReviewsOutput{
		Reviews: reviews,
		Total:   total,
		Page:    p.Page,
		Limit:   p.Limit,
	}, nil
}

// Detail retrieves a single review by ID.
func (uc *implUseCase) Detail(ctx context.Context, id string) (review.DetailReviewOutput, error) {
	rv, err := uc.repo.GetOneReview(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneReview: %v", err)
		return review.DetailReviewOutput{}, err
	}
	if rv.ID == "" {
		return review.DetailReviewOutput{}, review.ErrReviewNotFound
	}
	return review.DetailReviewOutput{Review: rv}, nil
}

// Update modifies an existing review (partial update).
func (uc *implUseCase) Update(ctx context.Context, input review.UpdateReviewInput) (review.UpdateReviewOutput, error) {
	existing, err := uc.repo.GetOneReview(ctx, input.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneReview: %v", err)
		return review.UpdateReviewOutput{}, err
	}
	if existing.ID == "" {
		return review.UpdateReviewOutput{}, review.ErrReviewNotFound
	}

	rating := existing.Rating
	if input.Rating != 0 {
		if input.Rating < 1 || input.Rating > 5 {
			return review.UpdateReviewOutput{}, review.ErrInvalidRating
		}
		rating = input.Rating
	}
	isApproved := existing.IsApproved
	if input.IsApproved != nil {
		isApproved = *input.IsApproved
	}

	rv, err := uc.repo.UpdateReview(ctx, repo.UpdateReviewOptions{
		ID:           input.ID,
		CustomerName: coalesce(input.CustomerName, existing.CustomerName),
		Rating:       rating,
		Content:      coalesce(input.Content, existing.Content),
		IsApproved:   isApproved,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateReview: %v", err)
		return review.UpdateReviewOutput{}, err
	}
	return review.UpdateReviewOutput{Review: rv}, nil
}

// Delete removes a review by ID.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	existing, err := uc.repo.GetOneReview(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneReview: %v", err)
		return err
	}
	if existing.ID == "" {
		return review.ErrReviewNotFound
	}
	if err := uc.repo.DeleteReview(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteReview: %v", err)
		return err
	}
	return nil
}

// AverageRating returns the approved-review average and count (dashboard).
func (uc *implUseCase) AverageRating(ctx context.Context) (float64, int, error) {
	agg, err := uc.repo.AggregateRatings(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.AverageRating AggregateRatings: %v", err)
		return 0, 0, err
	}
	return agg.Average, agg.Count, nil
}

func coalesce(newVal, existing string) string {
	if newVal != "" {
		return newVal
	}
	return existing
}

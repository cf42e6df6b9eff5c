package repository

import (
	"context"

	"github.com/nghia89/landingpage-wedding-sub000/internal/review"
)

// Repository is the data store interface for the review domain.
type Repository interface {
	CreateReview(ctx context.Context, opt CreateReviewOptions) (review.Review, error)
	GetOneReview(ctx context.Context, id string) (review.Review, error)
	ListReviews(ctx context.Context, opt ListReviewsOptions) ([]review.Review, int, error)
	UpdateReview(ctx context.Context, opt UpdateReviewOptions) (review.Review, error)
	DeleteReview(ctx context.Context, id string) error
	AggregateRatings(ctx context.Context) (RatingAggregate, error)
}

// RatingAggregate is the approved-review rating summary for the dashboard.
type RatingAggregate struct {
	Average float64
	Count   int
}

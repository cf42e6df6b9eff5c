package review

import "context"

type UseCase interface {
	Create(ctx context.Context, input CreateReviewInput) (CreateReviewOutput, error)
	List(ctx context.Context, input ListReviewsInput) (ListReviewsOutput, error)
	Detail(ctx context.Context, id string) (DetailReviewOutput, error)
	Update(ctx context.Context, input UpdateReviewInput) (UpdateReviewOutput, error)
	Delete(ctx context.Context, id string) error
	AverageRating(ctx context.Context) (float64, int, error)
}

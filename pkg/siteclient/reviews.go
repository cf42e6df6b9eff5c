package siteclient

import (
	"context"

	"github.com/nghia89/landingpage-wedding-sub000/pkg/apiclient"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/mutate"
)

// ReviewsQuery is the review list query.
type ReviewsQuery = ListQuery[ReviewListParams, ReviewPage]

// Reviews creates the review list query with an optional rating filter.
func (c *Client) Reviews(ctx context.Context, initial ReviewListParams) *ReviewsQuery {
	q := newListQuery(c.debounce, c.notifier, c.fetchReviews)
	q.SetParams(ctx, initial)
	return q
}

func (c *Client) fetchReviews(ctx context.Context, p ReviewListParams) (ReviewPage, error) {
	env, err := c.api.Get(ctx, "/api/reviews", reviewQuerySchema.params(map[string]any{
		"page":   p.Page,
		"limit":  p.Limit,
		"rating": p.Rating,
	}))
	if err != nil {
		return ReviewPage{}, err
	}
	items, pg, err := pageOf[Review](env)
	if err != nil {
		return ReviewPage{}, err
	}
	return ReviewPage{Items: items, Pagination: pg}, nil
}

// CreateReview returns the admin create mutator.
func (c *Client) CreateReview() *mutate.Mutator[ReviewInput, Review] {
	return mutate.New(func(ctx context.Context, in ReviewInput) (Review, error) {
		env, err := c.api.Post(ctx, "/api/admin/reviews", in)
		if err != nil {
			return Review{}, err
		}
		return apiclient.Decode[Review](env)
	}, mutate.WithNotifier(c.notifier))
}

// UpdateReview returns the admin update mutator.
func (c *Client) UpdateReview() *mutate.Mutator[UpdateReviewInput, Review] {
	return mutate.New(func(ctx context.Context, in UpdateReviewInput) (Review, error) {
		env, err := c.api.Put(ctx, "/api/admin/reviews/"+in.ID, in.Input)
		if err != nil {
			return Review{}, err
		}
		return apiclient.Decode[Review](env)
	}, mutate.WithNotifier(c.notifier))
}

// DeleteReview returns the admin delete mutator.
func (c *Client) DeleteReview() *mutate.Mutator[string, struct{}] {
	return mutate.New(func(ctx context.Context, id string) (struct{}, error) {
		_, err := c.api.Delete(ctx, "/api/admin/reviews/"+id)
		return struct{}{}, err
	}, mutate.WithNotifier(c.notifier))
}

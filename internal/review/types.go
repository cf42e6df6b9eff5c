package review

import "time"

// Review is a customer testimonial. Only approved reviews are visible on the
// public site.
type Review struct {
	ID           string
	CustomerName string
	Rating       int
	Content      string
	IsApproved   bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// --- UseCase Inputs ---

type CreateReviewInput struct {
	CustomerName string
	Rating       int
	Content      string
	IsApproved   bool
}

type ListReviewsInput struct {
	Rating int
	// Approved filters by approval flag when set; nil means all.
	Approved *bool
	Page     int
	Limit    int
}

type UpdateReviewInput struct {
	ID           string
	CustomerName string
	Rating       int
	Content      string
	IsApproved   *bool
}

// --- UseCase Outputs ---

type CreateReviewOutput struct {
	Review Review
}

type ListReviewsOutput struct {
	Reviews []Review
	Total   int
	Page    int
	Limit   int
}

type DetailReviewOutput struct {
	Review Review
}

type UpdateReviewOutput struct {
	Review Review
}

package repository

// CreateReviewOptions holds parameters for inserting a new review.
type CreateReviewOptions struct {
	CustomerName string
	Rating       int
	Content      string
	IsApproved   bool
}

// ListReviewsOptions holds filter and pagination parameters.
type ListReviewsOptions struct {
	Rating   int
	Approved *bool
	Page     int
	Limit    int
}

// UpdateReviewOptions holds parameters for updating an existing review.
type UpdateReviewOptions struct {
	ID           string
	CustomerName string
	Rating       int
	Content      string
	IsApproved   bool
}

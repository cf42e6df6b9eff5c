package repository

// CreateImageOptions holds parameters for inserting a new gallery image.
type CreateImageOptions struct {
	Title     string
	ImageURL  string
	Category  string
	SortOrder int
}

// ListImagesOptions holds filter and pagination parameters. Results are
// ordered by sort_order then recency.
type ListImagesOptions struct {
	Category string
	Page     int
	Limit    int
}

// UpdateImageOptions holds parameters for updating an existing gallery image.
type UpdateImageOptions struct {
	ID        string
	Title     string
	ImageURL  string
	Category  string
	SortOrder int
}

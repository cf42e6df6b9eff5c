package gallery

import "time"

// Image is one portfolio photo shown on the landing page, ordered by
// SortOrder within its category.
type Image struct {
	ID        string
	Title     string
	ImageURL  string
	Category  string
	SortOrder int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// --- UseCase Inputs ---

type CreateImageInput struct {
	Title     string
	ImageURL  string
	Category  string
	SortOrder int
}

type ListImagesInput struct {
	Category string
	Page     int
	Limit    int
}

type UpdateImageInput struct {
	ID        string
	Title     string
	ImageURL  string
	Category  string
	SortOrder *int
}

// --- UseCase Outputs ---

type CreateImageOutput struct {
	Image Image
}

type ListImagesOutput struct {
	Images []Image
	Total  int
	Page   int
	Limit  int
}

type DetailImageOutput struct {
	Image Image
}

type UpdateImageOutput struct {
	Image Image
}

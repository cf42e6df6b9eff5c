package repository

// CreateServiceOptions holds parameters for inserting a new service.
type CreateServiceOptions struct {
	Name        string
	Description string
	Category    string
	PriceRange  string
	IsActive    bool
}

// GetOneServiceOptions holds filter parameters for fetching a single service.
type GetOneServiceOptions struct {
	ID   string
	Name string
}

// ListServicesOptions holds filter and pagination parameters. Page is
// clamped against the counted total inside the repository.
type ListServicesOptions struct {
	Category string
	IsActive *bool
	Page     int
	Limit    int
	OrderBy  string
}

// UpdateServiceOptions holds parameters for updating an existing service.
type UpdateServiceOptions struct {
	ID          string
	Name        string
	Description string
	Category    string
	PriceRange  string
	IsActive    bool
}

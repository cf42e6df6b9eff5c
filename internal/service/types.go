package service

import "time"

// Service is one wedding package offered by the studio (decoration,
// photography, full planning, ...).
type Service struct {
	ID          string
	Name        string
	Description string
	Category    string
	PriceRange  string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// --- UseCase Inputs ---

type CreateServiceInput struct {
	Name        string
	Description string
	Category    string
	PriceRange  string
	IsActive    bool
}

type ListServicesInput struct {
	Category string
	// IsActive filters by active flag when set; nil means all.
	IsActive *bool
	Page     int
	Limit    int
}

type UpdateServiceInput struct {
	Name        string
	Description string
	Category    string
	PriceRange  string
	IsActive    *bool
	ID          string
}

// --- UseCase Outputs ---

type CreateServiceOutput struct {
	Service Service
}

type ListServicesOutput struct {
	Services []Service
	Total    int
	Page     int
	Limit    int
}

type DetailServiceOutput struct {
	Service Service
}

type UpdateServiceOutput struct {
	Service Service
}

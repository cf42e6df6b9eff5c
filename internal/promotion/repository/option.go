package repository

// CreatePromotionOptions holds parameters for inserting a new promotion.
type CreatePromotionOptions struct {
	Title       string
	Description string
	Discount    string
	StartDate   string
	EndDate     string
	IsActive    bool
}

// ListPromotionsOptions holds filter and pagination parameters.
type ListPromotionsOptions struct {
	IsActive *bool
	Page     int
	Limit    int
}

// UpdatePromotionOptions holds parameters for updating an existing promotion.
type UpdatePromotionOptions struct {
	ID          string
	Title       string
	Description string
	Discount    string
	StartDate   string
	EndDate     string
	IsActive    bool
}

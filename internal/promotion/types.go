package promotion

import "time"

// Promotion is a seasonal campaign banner (discount text, date window,
// active flag).
type Promotion struct {
	ID          string
	Title       string
	Description string
	Discount    string
	StartDate   string
	EndDate     string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// --- UseCase Inputs ---

type CreatePromotionInput struct {
	Title       string
	Description string
	Discount    string
	StartDate   string
	EndDate     string
	IsActive    bool
}

type ListPromotionsInput struct {
	// IsActive filters by active flag when set; nil means all.
	IsActive *bool
	Page     int
	Limit    int
}

type UpdatePromotionInput struct {
	ID          string
	Title       string
	Description string
	Discount    string
	StartDate   string
	EndDate     string
	IsActive    *bool
}

// --- UseCase Outputs ---

type CreatePromotionOutput struct {
	Promotion Promotion
}

type ListPromotionsOutput struct {
	Promotions []Promotion
	Total      int
	Page       int
	Limit      int
}

type DetailPromotionOutput struct {
	Promotion Promotion
}

type UpdatePromotionOutput struct {
	Promotion Promotion
}

package repository

// CreateBookingOptions holds parameters for inserting a new booking.
type CreateBookingOptions struct {
	CustomerName     string
	Phone            string
	ConsultationDate string
	ConsultationTime string
	Requirements     string
	Status           string
}

// GetOneBookingOptions holds filter parameters for fetching a single booking.
// All non-empty fields are applied as AND conditions.
type GetOneBookingOptions struct {
	ID string
}

// ListBookingsOptions holds filter and pagination parameters for listing
// bookings. Search matches customer name or phone. Page is clamped against
// the counted total inside the repository, so the offset is always in range.
type ListBookingsOptions struct {
	Status  string
	Date    string
	Search  string
	Page    int
	Limit   int
	OrderBy string
}

// UpdateBookingOptions holds parameters for updating an existing booking.
type UpdateBookingOptions struct {
	ID               string
	CustomerName     string
	Phone            string
	ConsultationDate string
	ConsultationTime string
	Requirements     string
	Status           string
}

package report

// Dashboard is the admin landing snapshot: booking pipeline counts plus a
// few content totals.
type Dashboard struct {
	BookingsByStatus map[string]int
	BookingsTotal    int
	Services         int
	GalleryImages    int
	Customers        int
	Subscribers      int
	AverageRating    float64
	ApprovedReviews  int
}

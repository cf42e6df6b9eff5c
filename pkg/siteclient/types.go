package siteclient

import (
	"time"

	"github.com/nghia89/landingpage-wedding-sub000/pkg/paging"
)

// --- Bookings ---

// Booking mirrors the backend booking schema.
type Booking struct {
	ID               string    `json:"id"`
	CustomerName     string    `json:"customerName"`
	Phone            string    `json:"phone"`
	ConsultationDate string    `json:"consultationDate"`
	ConsultationTime string    `json:"consultationTime"`
	Requirements     string    `json:"requirements"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// BookingListParams are the admin booking list filters.
type BookingListParams struct {
	Page   int
	Limit  int
	Status string
	Date   string
	Search string
}

// BookingPage is one page of bookings.
type BookingPage struct {
	Items      []Booking
	Pagination paging.Pagination
}

// BookingForm is the public consultation form as the visitor fills it in.
type BookingForm struct {
	Name    string
	Phone   string
	Email   string
	Date    string
	Time    string
	Service string
	Message string
}

// bookingSchema is the POST body the backend expects. Note the mapping is
// deliberately lossy: Service and Email are not part of the booking schema
// (pinned by a regression test; revisit only with a product decision).
type bookingSchema struct {
	CustomerName     string `json:"customerName"`
	Phone            string `json:"phone"`
	ConsultationDate string `json:"consultationDate"`
	ConsultationTime string `json:"consultationTime"`
	Requirements     string `json:"requirements"`
	Status           string `json:"status"`
}

func (f BookingForm) toSchema() bookingSchema {
	return bookingSchema{
		CustomerName:     f.Name,
		Phone:            f.Phone,
		ConsultationDate: f.Date,
		ConsultationTime: f.Time,
		Requirements:     f.Message,
		Status:           "pending",
	}
}

// --- Services ---

type Service struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	PriceRange  string    `json:"priceRange"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type ServiceListParams struct {
	Page     int
	Limit    int
	Category string
	Active   *bool
}

type ServicePage struct {
	Items      []Service
	Pagination paging.Pagination
}

// --- Gallery ---

type GalleryImage struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	ImageURL  string    `json:"imageUrl"`
	Category  string    `json:"category"`
	SortOrder int       `json:"sortOrder"`
	CreatedAt time.Time `json:"createdAt"`
}

type GalleryListParams struct {
	Page     int
	Limit    int
	Category string
}

type GalleryPage struct {
	Items      []GalleryImage
	Pagination paging.Pagination
}

// GalleryInput is the create/update payload for a gallery image.
type GalleryInput struct {
	Title     string `json:"title"`
	ImageURL  string `json:"imageUrl"`
	Category  string `json:"category"`
	SortOrder int    `json:"sortOrder"`
}

// UpdateGalleryInput targets one image by ID.
type UpdateGalleryInput struct {
	ID    string
	Input GalleryInput
}

// --- Reviews ---

type Review struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"customerName"`
	Rating       int       `json:"rating"`
	Content      string    `json:"content"`
	IsApproved   bool      `json:"isApproved"`
	CreatedAt    time.Time `json:"createdAt"`
}

type ReviewListParams struct {
	Page   int
	Limit  int
	Rating int
}

type ReviewPage struct {
	Items      []Review
	Pagination paging.Pagination
}

type ReviewInput struct {
	CustomerName string `json:"customerName"`
	Rating       int    `json:"rating"`
	Content      string `json:"content"`
	IsApproved   bool   `json:"isApproved"`
}

type UpdateReviewInput struct {
	ID    string
	Input ReviewInput
}

// --- Promotions ---

type Promotion struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Discount    string    `json:"discount"`
	StartDate   string    `json:"startDate"`
	EndDate     string    `json:"endDate"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

type PromotionListParams struct {
	Limit  int
	Active *bool
}

// --- Newsletter ---

type NewsletterSubscription struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	SubscribedAt time.Time `json:"subscribedAt"`
}

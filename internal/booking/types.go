package booking

import "time"

// Booking is a consultation request from the public site, managed from the
// admin panel afterwards.
type Booking struct {
	ID               string
	CustomerName     string
	Phone            string
	ConsultationDate string
	ConsultationTime string
	Requirements     string
	Status           string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// --- UseCase Inputs ---

type CreateBookingInput struct {
	CustomerName     string
	Phone            string
	ConsultationDate string
	ConsultationTime string
	Requirements     string
	Status           string
}

type ListBookingsInput struct {
	Status string
	Date   string
	Search string
	Page   int
	Limit  int
}

type UpdateBookingInput struct {
	ID               string
	CustomerName     string
	Phone            string
	ConsultationDate string
	ConsultationTime string
	Requirements     string
	Status           string
}

// --- UseCase Outputs ---

type CreateBookingOutput struct {
	Booking Booking
}

type ListBookingsOutput struct {
	Bookings []Booking
	Total    int
	Page     int
	Limit    int
}

type DetailBookingOutput struct {
	Booking Booking
}

type UpdateBookingOutput struct {
	Booking Booking
}

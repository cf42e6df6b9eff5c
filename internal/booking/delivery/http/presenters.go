package http

import (
	"time"

	"github.com/nghia89/landingpage-wedding-sub000/internal/booking"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/paging"
)

// --- Request DTOs ---

type createReq struct {
	CustomerName     string `json:"customerName"     binding:"required,min=1,max=255"`
	Phone            string `json:"phone"            binding:"required,min=8,max=20"`
	ConsultationDate string `json:"consultationDate" binding:"required"`
	ConsultationTime string `json:"consultationTime" binding:"required"`
	Requirements     string `json:"requirements"     binding:"max=2000"`
	Status           string `json:"status"           binding:"omitempty,oneof=pending confirmed completed cancelled"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() booking.CreateBookingInput {
	return booking.CreateBookingInput{
		CustomerName:     r.CustomerName,
		Phone:            r.Phone,
		ConsultationDate: r.ConsultationDate,
		ConsultationTime: r.ConsultationTime,
		Requirements:     r.Requirements,
		Status:           r.Status,
	}
}

// ---

type listReq struct {
	Status string `form:"status" binding:"omitempty,oneof=pending confirmed completed cancelled"`
	Date   string `form:"date"`
	Search string `form:"search"`
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput() booking.ListBookingsInput {
	return booking.ListBookingsInput{
		Status: r.Status,
		Date:   r.Date,
		Search: r.Search,
		Page:   r.Page,
		Limit:  r.Limit,
	}
}

// ---

type updateReq struct {
	ID               string `json:"-"` // populated from URI param
	CustomerName     string `json:"customerName"     binding:"omitempty,min=1,max=255"`
	Phone            string `json:"phone"            binding:"omitempty,min=8,max=20"`
	ConsultationDate string `json:"consultationDate"`
	ConsultationTime string `json:"consultationTime"`
	Requirements     string `json:"requirements"     binding:"omitempty,max=2000"`
	Status           string `json:"status"           binding:"omitempty,oneof=pending confirmed completed cancelled"`
}

func (r updateReq) validate() error { return nil }

func (r updateReq) toInput() booking.UpdateBookingInput {
	return booking.UpdateBookingInput{
		ID:               r.ID,
		CustomerName:     r.CustomerName,
		Phone:            r.Phone,
		ConsultationDate: r.ConsultationDate,
		ConsultationTime: r.ConsultationTime,
		Requirements:     r.Requirements,
		Status:           r.Status,
	}
}

// --- Response DTOs ---

type bookingResp struct {
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

func newBookingResp(b booking.Booking) bookingResp {
	return bookingResp{
		ID:               b.ID,
		CustomerName:     b.CustomerName,
		Phone:            b.Phone,
		ConsultationDate: b.ConsultationDate,
		ConsultationTime: b.ConsultationTime,
		Requirements:     b.Requirements,
		Status:           b.Status,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}

func (h *handler) newListResp(out booking.ListBookingsOutput) ([]bookingResp, paging.Pagination) {
	items := make([]bookingResp, len(out.Bookings))
	for i, b := range out.Bookings {
		items[i] = newBookingResp(b)
	}
	return items, paging.New(out.Page, out.Limit, out.Total)
}

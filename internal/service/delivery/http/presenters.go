package http

import (
	"time"

	"github.com/nghia89/landingpage-wedding-sub000/internal/service"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/paging"
)

// --- Request DTOs ---

type createReq struct {
	Name        string `json:"name"        binding:"required,min=1,max=255"`
	Description string `json:"description" binding:"max=2000"`
	Category    string `json:"category"    binding:"max=100"`
	PriceRange  string `json:"priceRange"  binding:"max=100"`
	IsActive    *bool  `json:"isActive"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() service.CreateServiceInput {
	// New services default to visible unless explicitly hidden.
	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}
	return service.CreateServiceInput{
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		PriceRange:  r.PriceRange,
		IsActive:    isActive,
	}
}

// ---

type listReq struct {
	Category string `form:"category"`
	IsActive *bool  `form:"isActive"`
	Page     int    `form:"page"`
	Limit    int    `form:"limit"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput() service.ListServicesInput {
	return service.ListServicesInput{
		Category: r.Category,
		IsActive: r.IsActive,
		Page:     r.Page,
		Limit:    r.Limit,
	}
}

// ---

type updateReq struct {
	ID          string `json:"-"`
	Name        string `json:"name"        binding:"omitempty,min=1,max=255"`
	Description string `json:"description" binding:"omitempty,max=2000"`
	Category    string `json:"category"    binding:"omitempty,max=100"`
	PriceRange  string `json:"priceRange"  binding:"omitempty,max=100"`
	IsActive    *bool  `json:"isActive"`
}

func (r updateReq) validate() error { return nil }

func (r updateReq) toInput() service.UpdateServiceInput {
	return service.UpdateServiceInput{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		PriceRange:  r.PriceRange,
		IsActive:    r.IsActive,
	}
}

// --- Response DTOs ---

type serviceResp struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	PriceRange  string    `json:"priceRange"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func newServiceResp(s service.Service) serviceResp {
	return serviceResp{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Category:    s.Category,
		PriceRange:  s.PriceRange,
		IsActive:    s.IsActive,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func (h *handler) newListResp(out service.ListServicesOutput) ([]serviceResp, paging.Pagination) {
	items := make([]serviceResp, len(out.Services))
	for i, s := range out.Services {
		items[i] = newServiceResp(s)
	}
	return items, paging.New(out.Page, out.Limit, out.Total)
}

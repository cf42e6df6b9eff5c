package http

import (
	"time"

	"github.com/nghia89/landingpage-wedding-sub000/internal/promotion"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/paging"
)

// --- Request DTOs ---

type createReq struct {
	Title       string `json:"title"       binding:"required,min=1,max=255"`
	Description string `json:"description" binding:"max=2000"`
	Discount    string `json:"discount"    binding:"required,max=100"`
	StartDate   string `json:"startDate"   binding:"required"`
	EndDate     string `json:"endDate"     binding:"required"`
	IsActive    *bool  `json:"isActive"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() promotion.CreatePromotionInput {
	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}
	return promotion.CreatePromotionInput{
		Title:       r.Title,
		Description: r.Description,
		Discount:    r.Discount,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		IsActive:    isActive,
	}
}

// ---

type listReq struct {
	IsActive *bool `form:"isActive"`
	Page     int   `form:"page"`
	Limit    int   `form:"limit"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput() promotion.ListPromotionsInput {
	return promotion.ListPromotionsInput{
		IsActive: r.IsActive,
		Page:     r.Page,
		Limit:    r.Limit,
	}
}

// ---

type updateReq struct {
	ID          string `json:"-"`
	Title       string `json:"title"       binding:"omitempty,min=1,max=255"`
	Description string `json:"description" binding:"omitempty,max=2000"`
	Discount    string `json:"discount"    binding:"omitempty,max=100"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	IsActive    *bool  `json:"isActive"`
}

func (r updateReq) validate() error { return nil }

func (r updateReq) toInput() promotion.UpdatePromotionInput {
	return promotion.UpdatePromotionInput{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Discount:    r.Discount,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		IsActive:    r.IsActive,
	}
}

// --- Response DTOs ---

type promotionResp struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Discount    string    `json:"discount"`
	StartDate   string    `json:"startDate"`
	EndDate     string    `json:"endDate"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func newPromotionResp(p promotion.Promotion) promotionResp {
	return promotionResp{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Discount:    p.Discount,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (h *handler) newListResp(out promotion.ListPromotionsOutput) ([]promotionResp, paging.Pagination) {
	items := make([]promotionResp, len(out.Promotions))
	for i, p := range out.Promotions {
		items[i] = newPromotionResp(p)
	}
	return items, paging.New(out.Page, out.Limit, out.Total)
}

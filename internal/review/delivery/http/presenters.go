package http

import (
	"time"

	"github.com/nghia89/landingpage-wedding-sub000/internal/review"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/paging"
)

// --- Request DTOs ---

type createReq struct {
	CustomerName string `json:"customerName" binding:"required,min=1,max=255"`
	Rating       int    `json:"rating"       binding:"required,min=1,max=5"`
	Content      string `json:"content"      binding:"required,max=2000"`
	IsApproved   bool   `json:"isApproved"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() review.CreateReviewInput {
	return review.CreateReviewInput{
		CustomerName: r.CustomerName,
		Rating:       r.Rating,
		Content:      r.Content,
		IsApproved:   r.IsApproved,
	}
}

// ---

type listReq struct {
	Rating int `form:"rating" binding:"omitempty,min=1,max=5"`
	Page   int `form:"page"`
	Limit  int `form:"limit"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput() review.ListReviewsInput {
	return review.ListReviewsInput{
		Rating: r.Rating,
		Page:   r.Page,
		Limit:  r.Limit,
	}
}

// ---

type adminListReq struct {
	Rating     int   `form:"rating" binding:"omitempty,min=1,max=5"`
	IsApproved *bool `form:"isApproved"`
	Page       int   `form:"page"`
	Limit      int   `form:"limit"`
}

func (r adminListReq) validate() error { return nil }

func (r adminListReq) toInput() review.ListReviewsInput {
	return review.ListReviewsInput{
		Rating:   r.Rating,
		Approved: r.IsApproved,
		Page:     r.Page,
		Limit:    r.Limit,
	}
}

// ---

type updateReq struct {
	ID           string `json:"-"`
	CustomerName string `json:"customerName" binding:"omitempty,min=1,max=255"`
	Rating       int    `json:"rating"       binding:"omitempty,min=1,max=5"`
	Content      string `json:"content"      binding:"omitempty,max=2000"`
	IsApproved   *bool  `json:"isApproved"`
}

func (r updateReq) validate() error { return nil }

func (r updateReq) toInput() review.UpdateReviewInput {
	return review.UpdateReviewInput{
		ID:           r.ID,
		CustomerName: r.CustomerName,
		Rating:       r.Rating,
		Content:      r.Content,
		IsApproved:   r.IsApproved,
	}
}

// --- Response DTOs ---

type reviewResp struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"customerName"`
	Rating       int       `json:"rating"`
	Content      string    `json:"content"`
	IsApproved   bool      `json:"isApproved"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func newReviewResp(rv review.Review) reviewResp {
	return reviewResp{
		ID:           rv.ID,
		CustomerName: rv.CustomerName,
		Rating:       rv.Rating,
		Content:      rv.Content,
		IsApproved:   rv.IsApproved,
		CreatedAt:    rv.CreatedAt,
		UpdatedAt:    rv.UpdatedAt,
	}
}

func (h *handler) newListResp(out review.ListReviewsOutput) ([]reviewResp, paging.Pagination) {
	items := make([]reviewResp, len(out.Reviews))
	for i, rv := range out.Reviews {
		items[i] = newReviewResp(rv)
	}
	return items, paging.New(out.Page, out.Limit, out.Total)
}

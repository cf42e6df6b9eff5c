package http

import (
	"time"

	"github.com/nghia89/landingpage-wedding-sub000/internal/gallery"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/paging"
)

// --- Request DTOs ---

type createReq struct {
	Title     string `json:"title"     binding:"required,min=1,max=255"`
	ImageURL  string `json:"imageUrl"  binding:"required,url"`
	Category  string `json:"category"  binding:"max=100"`
	SortOrder int    `json:"sortOrder" binding:"gte=0"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() gallery.CreateImageInput {
	return gallery.CreateImageInput{
		Title:     r.Title,
		ImageURL:  r.ImageURL,
		Category:  r.Category,
		SortOrder: r.SortOrder,
	}
}

// ---

type listReq struct {
	Category string `form:"category"`
	Page     int    `form:"page"`
	Limit    int    `form:"limit"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput() gallery.ListImagesInput {
	return gallery.ListImagesInput{
		Category: r.Category,
		Page:     r.Page,
		Limit:    r.Limit,
	}
}

// ---

type updateReq struct {
	ID        string `json:"-"`
	Title     string `json:"title"     binding:"omitempty,min=1,max=255"`
	ImageURL  string `json:"imageUrl"  binding:"omitempty,url"`
	Category  string `json:"category"  binding:"omitempty,max=100"`
	SortOrder *int   `json:"sortOrder" binding:"omitempty,gte=0"`
}

func (r updateReq) validate() error { return nil }

func (r updateReq) toInput() gallery.UpdateImageInput {
	return gallery.UpdateImageInput{
		ID:        r.ID,
		Title:     r.Title,
		ImageURL:  r.ImageURL,
		Category:  r.Category,
		SortOrder: r.SortOrder,
	}
}

// --- Response DTOs ---

type imageResp struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	ImageURL  string    `json:"imageUrl"`
	Category  string    `json:"category"`
	SortOrder int       `json:"sortOrder"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func newImageResp(img gallery.Image) imageResp {
	return imageResp{
		ID:        img.ID,
		Title:     img.Title,
		ImageURL:  img.ImageURL,
		Category:  img.Category,
		SortOrder: img.SortOrder,
		CreatedAt: img.CreatedAt,
		UpdatedAt: img.UpdatedAt,
	}
}

func (h *handler) newListResp(out gallery.ListImagesOutput) ([]imageResp, paging.Pagination) {
	items := make([]imageResp, len(out.Images))
	for i, img := range out.Images {
		items[i] = newImageResp(img)
	}
	return items, paging.New(out.Page, out.Limit, out.Total)
}

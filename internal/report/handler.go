package report

import (
	"github.com/gin-gonic/gin"

	"github.com/nghia89/landingpage-wedding-sub000/internal/middleware"
	pkgErrors "github.com/nghia89/landingpage-wedding-sub000/pkg/errors"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/log"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/response"
)

// Handler serves the admin reporting endpoints.
type Handler struct {
	l   log.Logger
	svc Service
}

func NewHandler(l log.Logger, svc Service) *Handler {
	return &Handler{l: l, svc: svc}
}

// RegisterRoutes mounts the reporting endpoints. All of them are admin-only.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, mw middleware.Middleware) {
	rg.GET("/admin/reports/dashboard", mw.Auth(), h.dashboard)
}

type dashboardResp struct {
	BookingsByStatus map[string]int `json:"bookingsByStatus"`
	BookingsTotal    int            `json:"bookingsTotal"`
	Services         int            `json:"services"`
	GalleryImages    int            `json:"galleryImages"`
	Customers        int            `json:"customers"`
	Subscribers      int            `json:"subscribers"`
	AverageRating    float64        `json:"averageRating"`
	ApprovedReviews  int            `json:"approvedReviews"`
}

func (h *Handler) dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	d, err := h.svc.Dashboard(ctx)
	if err != nil {
		h.l.Errorf(ctx, "report.dashboard: %v", err)
		response.Error(c, pkgErrors.NewHTTPError(500, "Internal server error"))
		return
	}

	response.OK(c, dashboardResp{
		BookingsByStatus: d.BookingsByStatus,
		BookingsTotal:    d.BookingsTotal,
		Services:         d.Services,
		GalleryImages:    d.GalleryImages,
		Customers:        d.Customers,
		Subscribers:      d.Subscribers,
		AverageRating:    d.AverageRating,
		ApprovedReviews:  d.ApprovedReviews,
	})
}

package appointment

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nghia89/landingpage-wedding-sub000/internal/middleware"
	pkgErrors "github.com/nghia89/landingpage-wedding-sub000/pkg/errors"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/log"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/paging"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/response"
)

// Handler serves the admin appointment endpoints.
type Handler struct {
	l   log.Logger
	svc Service
}

func NewHandler(l log.Logger, svc Service) *Handler {
	return &Handler{l: l, svc: svc}
}

// RegisterRoutes mounts the appointment endpoints. All of them are
// admin-only.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, mw middleware.Middleware) {
	admin := rg.Group("/admin/appointments", mw.Auth())
	{
		admin.POST("", h.create)
		admin.GET("", h.list)
		admin.GET("/:id", h.detail)
		admin.PUT("/:id", h.update)
		admin.DELETE("/:id", h.delete)
	}
}

type createReq struct {
	BookingID     string `json:"bookingId"`
	CustomerName  string `json:"customerName"  binding:"required,min=1,max=255"`
	ScheduledDate string `json:"scheduledDate" binding:"required"`
	ScheduledTime string `json:"scheduledTime" binding:"required"`
	Location      string `json:"location"      binding:"max=500"`
	Notes         string `json:"notes"         binding:"max=2000"`
}

type updateReq struct {
	ScheduledDate string `json:"scheduledDate"`
	ScheduledTime string `json:"scheduledTime"`
	Location      string `json:"location" binding:"omitempty,max=500"`
	Notes         string `json:"notes"    binding:"omitempty,max=2000"`
	Status        string `json:"status"   binding:"omitempty,oneof=scheduled completed cancelled"`
}

type appointmentResp struct {
	ID            string    `json:"id"`
	BookingID     string    `json:"bookingId"`
	CustomerName  string    `json:"customerName"`
	ScheduledDate string    `json:"scheduledDate"`
	ScheduledTime string    `json:"scheduledTime"`
	Location      string    `json:"location"`
	Notes         string    `json:"notes"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func newAppointmentResp(a Appointment) appointmentResp {
	return appointmentResp{
		ID:            a.ID,
		BookingID:     a.BookingID,
		CustomerName:  a.CustomerName,
		ScheduledDate: a.ScheduledDate,
		ScheduledTime: a.ScheduledTime,
		Location:      a.Location,
		Notes:         a.Notes,
		Status:        a.Status,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

func (h *Handler) create(c *gin.Context) {
	ctx := c.Request.Context()

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.svc.Create(ctx, CreateAppointmentInput{
		BookingID:     req.BookingID,
		CustomerName:  req.CustomerName,
		ScheduledDate: req.ScheduledDate,
		ScheduledTime: req.ScheduledTime,
		Location:      req.Location,
		Notes:         req.Notes,
	})
	if err != nil {
		h.l.Errorf(ctx, "appointment.create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.Created(c, newAppointmentResp(out))
}

func (h *Handler) list(c *gin.Context) {
	ctx := c.Request.Context()

	var req struct {
		Status string `form:"status" binding:"omitempty,oneof=scheduled completed cancelled"`
		Date   string `form:"date"`
		Page   int    `form:"page"`
		Limit  int    `form:"limit"`
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.svc.List(ctx, ListAppointmentsInput{
		Status: req.Status,
		Date:   req.Date,
		Page:   req.Page,
		Limit:  req.Limit,
	})
	if err != nil {
		h.l.Errorf(ctx, "appointment.list: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	items := make([]appointmentResp, len(out.Appointments))
	for i, a := range out.Appointments {
		items[i] = newAppointmentResp(a)
	}
	response.OKPaged(c, items, paging.New(out.Page, out.Limit, out.Total))
}

func (h *Handler) detail(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.svc.Detail(ctx, c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, newAppointmentResp(out))
}

func (h *Handler) update(c *gin.Context) {
	ctx := c.Request.Context()

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.svc.Update(ctx, UpdateAppointmentInput{
		ID:            c.Param("id"),
		ScheduledDate: req.ScheduledDate,
		ScheduledTime: req.ScheduledTime,
		Location:      req.Location,
		Notes:         req.Notes,
		Status:        req.Status,
	})
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, newAppointmentResp(out))
}

func (h *Handler) delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.svc.Delete(ctx, c.Param("id")); err != nil {
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, nil)
}

func (h *Handler) mapError(err error) error {
	switch err {
	case ErrAppointmentNotFound:
		return pkgErrors.NewHTTPError(404, "Appointment not found")
	case ErrInvalidSchedule:
		return pkgErrors.NewHTTPError(400, "Appointment schedule must be a future date with HH:MM time")
	case ErrInvalidStatus:
		return pkgErrors.NewHTTPError(400, "Invalid appointment status")
	default:
		return pkgErrors.NewHTTPError(500, "Internal server error")
	}
}

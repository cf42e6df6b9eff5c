package customer

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nghia89/landingpage-wedding-sub000/internal/middleware"
	pkgErrors "github.com/nghia89/landingpage-wedding-sub000/pkg/errors"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/log"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/paging"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/response"
)

// Handler serves the admin CRM endpoints.
type Handler struct {
	l   log.Logger
	svc Service
}

func NewHandler(l log.Logger, svc Service) *Handler {
	return &Handler{l: l, svc: svc}
}

// RegisterRoutes mounts the customer endpoints. All of them are admin-only.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, mw middleware.Middleware) {
	admin := rg.Group("/admin/customers", mw.Auth())
	{
		admin.POST("", h.create)
		admin.GET("", h.list)
		admin.GET("/:id", h.detail)
		admin.PUT("/:id", h.update)
		admin.DELETE("/:id", h.delete)
	}
}

type customerReq struct {
	Name        string `json:"name"        binding:"required,min=1,max=255"`
	Phone       string `json:"phone"       binding:"required,min=8,max=20"`
	Email       string `json:"email"       binding:"omitempty,email"`
	WeddingDate string `json:"weddingDate"`
	Notes       string `json:"notes"       binding:"max=2000"`
}

type customerResp struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	WeddingDate string    `json:"weddingDate"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func newCustomerResp(c Customer) customerResp {
	return customerResp{
		ID:          c.ID,
		Name:        c.Name,
		Phone:       c.Phone,
		Email:       c.Email,
		WeddingDate: c.WeddingDate,
		Notes:       c.Notes,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func (h *Handler) create(c *gin.Context) {
	ctx := c.Request.Context()

	var req customerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.svc.Create(ctx, CreateCustomerInput{
		Name:        req.Name,
		Phone:       req.Phone,
		Email:       req.Email,
		WeddingDate: req.WeddingDate,
		Notes:       req.Notes,
	})
	if err != nil {
		h.l.Errorf(ctx, "customer.create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.Created(c, newCustomerResp(out))
}

func (h *Handler) list(c *gin.Context) {
	ctx := c.Request.Context()

	var req struct {
		Search string `form:"search"`
		Page   int    `form:"page"`
		Limit  int    `form:"limit"`
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.svc.List(ctx, ListCustomersInput{Search: req.Search, Page: req.Page, Limit: req.Limit})
	if err != nil {
		h.l.Errorf(ctx, "customer.list: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	items := make([]customerResp, len(out.Customers))
	for i, cust := range out.Customers {
		items[i] = newCustomerResp(cust)
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
	response.OK(c, newCustomerResp(out))
}

func (h *Handler) update(c *gin.Context) {
	ctx := c.Request.Context()

	var req customerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.svc.Update(ctx, UpdateCustomerInput{
		ID:          c.Param("id"),
		Name:        req.Name,
		Phone:       req.Phone,
		Email:       req.Email,
		WeddingDate: req.WeddingDate,
		Notes:       req.Notes,
	})
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, newCustomerResp(out))
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
	if err == ErrCustomerNotFound {
		return pkgErrors.NewHTTPError(404, "Customer not found")
	}
	return pkgErrors.NewHTTPError(500, "Internal server error")
}

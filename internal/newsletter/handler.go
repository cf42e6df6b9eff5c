package newsletter

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nghia89/landingpage-wedding-sub000/internal/middleware"
	pkgErrors "github.com/nghia89/landingpage-wedding-sub000/pkg/errors"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/log"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/paging"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/response"
)

// Handler serves the newsletter endpoints.
type Handler struct {
	l   log.Logger
	svc Service
}

func NewHandler(l log.Logger, svc Service) *Handler {
	return &Handler{l: l, svc: svc}
}

// RegisterRoutes mounts the newsletter endpoints. Subscribing is public and
// rate limited; the subscriber list is admin-only.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, mw middleware.Middleware) {
	rg.POST("/newsletter/subscribe", mw.RateLimit(), h.subscribe)
	rg.GET("/admin/newsletter", mw.Auth(), h.list)
}

type subscribeReq struct {
	Email string `json:"email" binding:"required"`
}

type subscriptionResp struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	SubscribedAt time.Time `json:"subscribedAt"`
}

func newSubscriptionResp(sub Subscription) subscriptionResp {
	return subscriptionResp{
		ID:           sub.ID,
		Email:        sub.Email,
		SubscribedAt: sub.SubscribedAt,
	}
}

func (h *Handler) subscribe(c *gin.Context) {
	ctx := c.Request.Context()

	var req subscribeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.svc.Subscribe(ctx, req.Email)
	if err != nil {
		if err == ErrInvalidEmail {
			response.Error(c, pkgErrors.NewHTTPError(400, "Please provide a valid email address"))
			return
		}
		h.l.Errorf(ctx, "newsletter.subscribe: %v", err)
		response.Error(c, pkgErrors.NewHTTPError(500, "Internal server error"))
		return
	}
	response.Created(c, newSubscriptionResp(out))
}

func (h *Handler) list(c *gin.Context) {
	ctx := c.Request.Context()

	var req struct {
		Page  int `form:"page"`
		Limit int `form:"limit"`
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.svc.List(ctx, ListSubscriptionsInput{Page: req.Page, Limit: req.Limit})
	if err != nil {
		h.l.Errorf(ctx, "newsletter.list: %v", err)
		response.Error(c, pkgErrors.NewHTTPError(500, "Internal server error"))
		return
	}

	items := make([]subscriptionResp, len(out.Subscriptions))
	for i, sub := range out.Subscriptions {
		items[i] = newSubscriptionResp(sub)
	}
	response.OKPaged(c, items, paging.New(out.Page, out.Limit, out.Total))
}

package settings

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nghia89/landingpage-wedding-sub000/internal/middleware"
	pkgErrors "github.com/nghia89/landingpage-wedding-sub000/pkg/errors"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/log"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/response"
)

// Handler serves the site settings endpoints.
type Handler struct {
	l   log.Logger
	svc Service
}

func NewHandler(l log.Logger, svc Service) *Handler {
	return &Handler{l: l, svc: svc}
}

// RegisterRoutes mounts the settings endpoints. Reading is public (the
// landing page footer needs it); writing is admin-only.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, mw middleware.Middleware) {
	rg.GET("/settings", h.get)
	rg.PUT("/admin/settings", mw.Auth(), h.update)
}

type settingsReq struct {
	SiteName     string `json:"siteName"     binding:"omitempty,max=255"`
	Tagline      string `json:"tagline"      binding:"omitempty,max=500"`
	Phone        string `json:"phone"        binding:"omitempty,max=20"`
	Email        string `json:"email"        binding:"omitempty,email"`
	Address      string `json:"address"      binding:"omitempty,max=500"`
	FacebookURL  string `json:"facebookUrl"  binding:"omitempty,url"`
	InstagramURL string `json:"instagramUrl" binding:"omitempty,url"`
	WorkingHours string `json:"workingHours" binding:"omitempty,max=255"`
}

type settingsResp struct {
	SiteName     string    `json:"siteName"`
	Tagline      string    `json:"tagline"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	Address      string    `json:"address"`
	FacebookURL  string    `json:"facebookUrl"`
	InstagramURL string    `json:"instagramUrl"`
	WorkingHours string    `json:"workingHours"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func newSettingsResp(s Settings) settingsResp {
	return settingsResp{
		SiteName:     s.SiteName,
		Tagline:      s.Tagline,
		Phone:        s.Phone,
		Email:        s.Email,
		Address:      s.Address,
		FacebookURL:  s.FacebookURL,
		InstagramURL: s.InstagramURL,
		WorkingHours: s.WorkingHours,
		UpdatedAt:    s.UpdatedAt,
	}
}

func (h *Handler) get(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.svc.Get(ctx)
	if err != nil {
		h.l.Errorf(ctx, "settings.get: %v", err)
		response.Error(c, pkgErrors.NewHTTPError(500, "Internal server error"))
		return
	}
	response.OK(c, newSettingsResp(out))
}

func (h *Handler) update(c *gin.Context) {
	ctx := c.Request.Context()

	var req settingsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.svc.Update(ctx, UpdateSettingsInput{
		SiteName:     req.SiteName,
		Tagline:      req.Tagline,
		Phone:        req.Phone,
		Email:        req.Email,
		Address:      req.Address,
		FacebookURL:  req.FacebookURL,
		InstagramURL: req.InstagramURL,
		WorkingHours: req.WorkingHours,
	})
	if err != nil {
		h.l.Errorf(ctx, "settings.update: %v", err)
		response.Error(c, pkgErrors.NewHTTPError(500, "Internal server error"))
		return
	}
	response.OK(c, newSettingsResp(out))
}

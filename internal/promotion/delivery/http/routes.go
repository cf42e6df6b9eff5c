package http

import (
	"github.com/gin-gonic/gin"

	"github.com/nghia89/landingpage-wedding-sub000/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Campaign
// banners are public; management lives under the admin prefix.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/promotions", h.List)

	admin := rg.Group("/admin/promotions", mw.Auth())
	{
		admin.POST("", h.Create)
		admin.GET("/:id", h.Detail)
		admin.PUT("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
	}
}

package http

import (
	"github.com/gin-gonic/gin"

	"github.com/nghia89/landingpage-wedding-sub000/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. The portfolio
// is public; write operations live under the admin prefix.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	public := rg.Group("/gallery")
	{
		public.GET("", h.List)
		public.GET("/:id", h.Detail)
	}

	admin := rg.Group("/admin/gallery", mw.Auth())
	{
		admin.POST("", h.Create)
		admin.PUT("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
	}
}

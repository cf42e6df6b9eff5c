package http

import (
	"github.com/gin-gonic/gin"

	"github.com/nghia89/landingpage-wedding-sub000/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. The catalog
// is public; write operations live under the admin prefix.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	services := rg.Group("/services")
	{
		services.GET("", h.List)
		services.GET("/:id", h.Detail)
	}

	admin := rg.Group("/admin/services", mw.Auth())
	{
		admin.POST("", h.Create)
		admin.PUT("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
	}
}

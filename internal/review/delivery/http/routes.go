package http

import (
	"github.com/gin-gonic/gin"

	"github.com/nghia89/landingpage-wedding-sub000/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. The public
// listing only ever serves approved reviews; moderation happens under the
// admin prefix.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/reviews", h.List)

	admin := rg.Group("/admin/reviews", mw.Auth())
	{
		admin.POST("", h.Create)
		admin.GET("", h.AdminList)
		admin.GET("/:id", h.Detail)
		admin.PUT("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
	}
}

package http

import (
	"github.com/gin-gonic/gin"

	"github.com/nghia89/landingpage-wedding-sub000/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Creating a booking is public (the consultation form on the landing page);
// everything else belongs to the admin panel.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	bookings := rg.Group("/bookings")
	{
		bookings.POST("", mw.RateLimit(), h.Create)
		bookings.GET("", mw.Auth(), h.List)
		bookings.GET("/:id", mw.Auth(), h.Detail)
		bookings.PUT("/:id", mw.Auth(), h.Update)
		bookings.DELETE("/:id", mw.Auth(), h.Delete)
	}
}

package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/nghia89/landingpage-wedding-sub000/internal/middleware"
)

func (srv *HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.cfg)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	return srv.registerDomainRoutes(mw)
}

func (srv *HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	ctx := context.Background()

	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.RequestID())
	srv.gin.Use(mw.CORS())

	srv.l.Infof(ctx, "CORS origins: %v", srv.cfg.CORS.AllowedOrigins)
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes wires every domain under /api.
func (srv *HTTPServer) registerDomainRoutes(mw middleware.Middleware) error {
	ctx := context.Background()
	api := srv.gin.Group("/api")

	srv.setupBookingDomain(ctx, api, mw)
	srv.setupServiceDomain(ctx, api, mw)
	srv.setupGalleryDomain(ctx, api, mw)
	srv.setupReviewDomain(ctx, api, mw)
	srv.setupPromotionDomain(ctx, api, mw)
	srv.setupAdminDomains(ctx, api, mw)

	return nil
}

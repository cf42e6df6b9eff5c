package httpserver

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	bookingHTTP "github.com/nghia89/landingpage-wedding-sub000/internal/booking/delivery/http"
	bookingRepo "github.com/nghia89/landingpage-wedding-sub000/internal/booking/repository/postgre"
	bookingUC "github.com/nghia89/landingpage-wedding-sub000/internal/booking/usecase"
	galleryHTTP "github.com/nghia89/landingpage-wedding-sub000/internal/gallery/delivery/http"
	galleryRepo "github.com/nghia89/landingpage-wedding-sub000/internal/gallery/repository/postgre"
	galleryUC "github.com/nghia89/landingpage-wedding-sub000/internal/gallery/usecase"
	promotionHTTP "github.com/nghia89/landingpage-wedding-sub000/internal/promotion/delivery/http"
	promotionRepo "github.com/nghia89/landingpage-wedding-sub000/internal/promotion/repository/postgre"
	promotionUC "github.com/nghia89/landingpage-wedding-sub000/internal/promotion/usecase"
	reviewHTTP "github.com/nghia89/landingpage-wedding-sub000/internal/review/delivery/http"
	reviewRepo "github.com/nghia89/landingpage-wedding-sub000/internal/review/repository/postgre"
	reviewUC "github.com/nghia89/landingpage-wedding-sub000/internal/review/usecase"
	serviceHTTP "github.com/nghia89/landingpage-wedding-sub000/internal/service/delivery/http"
	serviceRepo "github.com/nghia89/landingpage-wedding-sub000/internal/service/repository/postgre"
	serviceUC "github.com/nghia89/landingpage-wedding-sub000/internal/service/usecase"

	"github.com/nghia89/landingpage-wedding-sub000/internal/appointment"
	"github.com/nghia89/landingpage-wedding-sub000/internal/customer"
	"github.com/nghia89/landingpage-wedding-sub000/internal/middleware"
	"github.com/nghia89/landingpage-wedding-sub000/internal/newsletter"
	"github.com/nghia89/landingpage-wedding-sub000/internal/report"
	"github.com/nghia89/landingpage-wedding-sub000/internal/settings"
)

const settingsCacheTTL = 5 * time.Minute

// setupBookingDomain wires repository → usecase → delivery for bookings.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.postgresDB, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(repo, srv.l)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv *HTTPServer) setupBookingDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	repo := bookingRepo.New(srv.postgresDB, srv.l)
	uc := bookingUC.New(repo, srv.l, srv.mail, srv.dates, srv.cfg.Mail.NotifyAddress)
	h := bookingHTTP.New(srv.l, uc)
	bookingHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Booking domain registered")
}

func (srv *HTTPServer) setupServiceDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	repo := serviceRepo.New(srv.postgresDB, srv.l)
	uc := serviceUC.New(repo, srv.l)
	h := serviceHTTP.New(srv.l, uc)
	serviceHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Service domain registered")
}

func (srv *HTTPServer) setupGalleryDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	repo := galleryRepo.New(srv.postgresDB, srv.l)
	uc := galleryUC.New(repo, srv.l)
	h := galleryHTTP.New(srv.l, uc)
	galleryHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Gallery domain registered")
}

func (srv *HTTPServer) setupReviewDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	repo := reviewRepo.New(srv.postgresDB, srv.l)
	uc := reviewUC.New(repo, srv.l)
	h := reviewHTTP.New(srv.l, uc)
	reviewHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Review domain registered")
}

func (srv *HTTPServer) setupPromotionDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	repo := promotionRepo.New(srv.postgresDB, srv.l)
	uc := promotionUC.New(repo, srv.l)
	h := promotionHTTP.New(srv.l, uc)
	promotionHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Promotion domain registered")
}

// setupAdminDomains wires the flat admin-side domains (customers,
// appointments, settings, newsletter) plus the dashboard report, which reads
// across several domains.
func (srv *HTTPServer) setupAdminDomains(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	customerSvc := customer.NewService(customer.NewStore(srv.postgresDB, srv.l), srv.l)
	customer.NewHandler(srv.l, customerSvc).RegisterRoutes(api, mw)

	appointmentSvc := appointment.NewService(appointment.NewStore(srv.postgresDB, srv.l), srv.dates, srv.l)
	appointment.NewHandler(srv.l, appointmentSvc).RegisterRoutes(api, mw)

	settingsSvc := settings.NewService(settings.NewStore(srv.postgresDB, srv.l), settingsCacheTTL, srv.l)
	settings.NewHandler(srv.l, settingsSvc).RegisterRoutes(api, mw)

	newsletterSvc := newsletter.NewService(newsletter.NewStore(srv.postgresDB, srv.l), srv.l)
	newsletter.NewHandler(srv.l, newsletterSvc).RegisterRoutes(api, mw)

	reportSvc := report.NewService(
		bookingRepo.New(srv.postgresDB, srv.l),
		serviceUC.New(serviceRepo.New(srv.postgresDB, srv.l), srv.l),
		galleryUC.New(galleryRepo.New(srv.postgresDB, srv.l), srv.l),
		customerSvc,
		newsletterSvc,
		reviewUC.New(reviewRepo.New(srv.postgresDB, srv.l), srv.l),
		srv.l,
	)
	report.NewHandler(srv.l, reportSvc).RegisterRoutes(api, mw)

	srv.l.Infof(ctx, "Admin domains registered")
}

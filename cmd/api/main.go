package main

import (
	"context"
	"fmt"

	"github.com/nghia89/landingpage-wedding-sub000/config"
	_ "github.com/nghia89/landingpage-wedding-sub000/docs" // Swagger docs
	"github.com/nghia89/landingpage-wedding-sub000/internal/httpserver"
	"github.com/nghia89/landingpage-wedding-sub000/migrations"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/dateparse"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/log"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/mailer"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/postgres"
)

// @title       Wedding Studio API
// @description Landing page and admin API for a wedding planning studio: consultation bookings, service catalog, portfolio gallery, reviews, and promotions.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()
	logger.Info(ctx, "Starting Wedding Studio API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. PostgreSQL + migrations
	db, err := postgres.Connect(postgres.Config{
		DSN:             cfg.Postgres.DSN,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	})
	if err != nil {
		logger.Fatal(ctx, "Failed to connect to postgres: ", err)
		return
	}
	defer db.Close()

	if err := postgres.Migrate(db, migrations.FS); err != nil {
		logger.Fatal(ctx, "Failed to run migrations: ", err)
		return
	}
	logger.Info(ctx, "Database ready")

	// 4. Mailer (optional; bookings still work without it)
	var mail mailer.Mailer = mailer.Nop{}
	if cfg.Mail.APIKey != "" {
		mail = mailer.NewClient(cfg.Mail.APIURL, cfg.Mail.APIKey, cfg.Mail.FromAddress)
		logger.Info(ctx, "Mailer initialized")
	} else {
		logger.Warn(ctx, "MAIL_API_KEY missing, booking notifications disabled")
	}

	// 5. Date parser in the studio timezone
	dates, err := dateparse.NewParser(cfg.Booking.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Booking.Timezone, err)
		dates, _ = dateparse.NewParser("UTC")
	}

	// 6. HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		AppConfig:   cfg,
		PostgresDB:  db,
		Mailer:      mail,
		Dates:       dates,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

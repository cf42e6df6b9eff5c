package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/nghia89/landingpage-wedding-sub000/config"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/dateparse"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/log"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/mailer"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Shared infrastructure handed to the domains
	cfg        *config.Config
	postgresDB *sql.DB
	mail       mailer.Mailer
	dates      *dateparse.Parser
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	AppConfig  *config.Config
	PostgresDB *sql.DB
	Mailer     mailer.Mailer
	Dates      *dateparse.Parser
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		cfg:         cfg.AppConfig,
		postgresDB:  cfg.PostgresDB,
		mail:        cfg.Mailer,
		dates:       cfg.Dates,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.cfg == nil {
		return errors.New("app config is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres connection is required")
	}
	if srv.mail == nil {
		return errors.New("mailer is required")
	}
	if srv.dates == nil {
		return errors.New("date parser is required")
	}
	return nil
}

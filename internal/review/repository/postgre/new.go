package postgre

import (
	"database/sql"
	"fmt"

	"github.com/nghia89/landingpage-wedding-sub000/internal/review/repository"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for the review domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("review/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("review/repository/postgre.%s", method)
}

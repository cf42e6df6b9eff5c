package settings

import (
	"context"
	"database/sql"

	"github.com/nghia89/landingpage-wedding-sub000/pkg/log"
)

type postgresStore struct {
	db *sql.DB
	l  log.Logger
}

// NewStore creates a PostgreSQL-backed Store. The site_settings table holds
// at most one row, keyed by a fixed id.
func NewStore(db *sql.DB, l log.Logger) Store {
	if db == nil {
		panic("settings: db is required")
	}
	return &postgresStore{db: db, l: l}
}

func (s *postgresStore) Get(ctx context.Context) (Settings, error) {
	const query = `
		SELECT site_name, tagline, phone, email, address, facebook_url, instagram_url, working_hours, updated_at
		FROM site_settings WHERE id = 1`

	var out Settings
	err := s.db.QueryRowContext(ctx, query).Scan(
		&out.SiteName, &out.Tagline, &out.Phone, &out.Email, &out.Address,
		&out.FacebookURL, &out.InstagramURL, &out.WorkingHours, &out.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		// A fresh database has no row yet; serve empty settings.
		return Settings{}, nil
	}
	return out, err
}

func (s *postgresStore) Upsert(ctx context.Context, in Settings) (Settings, error) {
	const query = `
		INSERT INTO site_settings (id, site_name, tagline, phone, email, address, facebook_url, instagram_url, working_hours, updated_at)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, NOW())
		ON CONFLICT (id) DO UPDATE SET
			site_name = EXCLUDED.site_name,
			tagline = EXCLUDED.tagline,
			phone = EXCLUDED.phone,
			email = EXCLUDED.email,
			address = EXCLUDED.address,
			facebook_url = EXCLUDED.facebook_url,
			instagram_url = EXCLUDED.instagram_url,
			working_hours = EXCLUDED.working_hours,
			updated_at = NOW()
		RETURNING site_name, tagline, phone, email, address, facebook_url, instagram_url, working_hours, updated_at`

	var out Settings
	err := s.db.QueryRowContext(ctx, query,
		in.SiteName, in.Tagline, in.Phone, in.Email, in.Address,
		in.FacebookURL, in.InstagramURL, in.WorkingHours,
	).Scan(
		&out.SiteName, &out.Tagline, &out.Phone, &out.Email, &out.Address,
		&out.FacebookURL, &out.InstagramURL, &out.WorkingHours, &out.UpdatedAt,
	)
	return out, err
}

package newsletter

import (
	"context"
	"database/sql"

	"github.com/nghia89/landingpage-wedding-sub000/pkg/log"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/paging"
)

type postgresStore struct {
	db *sql.DB
	l  log.Logger
}

// NewStore creates a PostgreSQL-backed Store.
func NewStore(db *sql.DB, l log.Logger) Store {
	if db == nil {
		panic("newsletter: db is required")
	}
	return &postgresStore{db: db, l: l}
}

func (s *postgresStore) GetByEmail(ctx context.Context, email string) (Subscription, error) {
	const query = `SELECT id, email, subscribed_at FROM newsletter_subscriptions WHERE email = $1 LIMIT 1`
	var sub Subscription
	err := s.db.QueryRowContext(ctx, query, email).Scan(&sub.ID, &sub.Email, &sub.SubscribedAt)
	if err == sql.ErrNoRows {
		return Subscription{}, nil
	}
	return sub, err
}

func (s *postgresStore) Insert(ctx context.Context, email string) (Subscription, error) {
	const query = `
		INSERT INTO newsletter_subscriptions (email, subscribed_at)
		VALUES ($1, NOW())
		ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
		RETURNING id, email, subscribed_at`
	var sub Subscription
	err := s.db.QueryRowContext(ctx, query, email).Scan(&sub.ID, &sub.Email, &sub.SubscribedAt)
	return sub, err
}

func (s *postgresStore) List(ctx context.Context, page, limit int) ([]Subscription, int, error) {
	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM newsletter_subscriptions`).Scan(&total); err != nil {
		return nil, 0, err
	}

	p := paging.New(page, limit, total)
	const query = `SELECT id, email, subscribed_at FROM newsletter_subscriptions ORDER BY subscribed_at DESC LIMIT $1 OFFSET $2`
	rows, err := s.db.QueryContext(ctx, query, p.Limit, p.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var subs []Subscription
	for rows.Next() {
		var sub Subscription
		if err := rows.Scan(&sub.ID, &sub.Email, &sub.SubscribedAt); err != nil {
			return nil, 0, err
		}
		subs = append(subs, sub)
	}
	return subs, total, nil
}

func (s *postgresStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM newsletter_subscriptions`).Scan(&n)
	return n, err
}

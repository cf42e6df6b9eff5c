package customer

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/nghia89/landingpage-wedding-sub000/pkg/log"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/paging"
)

const customerColumns = `id, name, phone, email, wedding_date, notes, created_at, updated_at`

type postgresStore struct {
	db *sql.DB
	l  log.Logger
}

// NewStore creates a PostgreSQL-backed Store.
func NewStore(db *sql.DB, l log.Logger) Store {
	if db == nil {
		panic("customer: db is required")
	}
	return &postgresStore{db: db, l: l}
}

func scanCustomer(row interface{ Scan(...any) error }) (Customer, error) {
	var c Customer
	err := row.Scan(
		&c.ID, &c.Name, &c.Phone, &c.Email, &c.WeddingDate, &c.Notes,
		&c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

func (s *postgresStore) Insert(ctx context.Context, c Customer) (Customer, error) {
	query := fmt.Sprintf(`
		INSERT INTO customers (name, phone, email, wedding_date, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING %s`, customerColumns)
	return scanCustomer(s.db.QueryRowContext(ctx, query, c.Name, c.Phone, c.Email, c.WeddingDate, c.Notes))
}

func (s *postgresStore) GetByID(ctx context.Context, id string) (Customer, error) {
	query := fmt.Sprintf(`SELECT %s FROM customers WHERE id = $1 LIMIT 1`, customerColumns)
	c, err := scanCustomer(s.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return Customer{}, nil
	}
	return c, err
}

func (s *postgresStore) List(ctx context.Context, search string, page, limit int) ([]Customer, int, error) {
	where := "1=1"
	var args []any
	if search != "" {
		where = "(name ILIKE $1 OR phone ILIKE $1 OR email ILIKE $1)"
		args = append(args, "%"+search+"%")
	}

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM customers WHERE %s", where)
	if err := s.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	p := paging.New(page, limit, total)
	idx := len(args) + 1
	query := fmt.Sprintf(`SELECT %s FROM customers WHERE %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		customerColumns, where, idx, idx+1)
	rows, err := s.db.QueryContext(ctx, query, append(args, p.Limit, p.Offset())...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var customers []Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, 0, err
		}
		customers = append(customers, c)
	}
	return customers, total, nil
}

func (s *postgresStore) Update(ctx context.Context, c Customer) (Customer, error) {
	query := fmt.Sprintf(`
		UPDATE customers
		SET name = $1, phone = $2, email = $3, wedding_date = $4, notes = $5, updated_at = $6
		WHERE id = $7
		RETURNING %s`, customerColumns)
	out, err := scanCustomer(s.db.QueryRowContext(ctx, query,
		c.Name, c.Phone, c.Email, c.WeddingDate, c.Notes, time.Now(), c.ID))
	if err == sql.ErrNoRows {
		return Customer{}, nil
	}
	return out, err
}

func (s *postgresStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM customers WHERE id = $1`, id)
	return err
}

func (s *postgresStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM customers`).Scan(&n)
	return n, err
}

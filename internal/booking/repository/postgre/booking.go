package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/nghia89/landingpage-wedding-sub000/internal/booking"
	repo "github.com/nghia89/landingpage-wedding-sub000/internal/booking/repository"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/paging"
)

const bookingColumns = `id, customer_name, phone, consultation_date, consultation_time, requirements, status, created_at, updated_at`

func scanBooking(row interface{ Scan(...any) error }) (booking.Booking, error) {
	var b booking.Booking
	err := row.Scan(
		&b.ID, &b.CustomerName, &b.Phone, &b.ConsultationDate, &b.ConsultationTime,
		&b.Requirements, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	)
	return b, err
}

// CreateBooking inserts a new booking row and returns the created entity.
func (r *implRepository) CreateBooking(ctx context.Context, opt repo.CreateBookingOptions) (booking.Booking, error) {
	query := fmt.Sprintf(`
		INSERT INTO bookings (customer_name, phone, consultation_date, consultation_time, requirements, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING %s`, bookingColumns)

	b, err := scanBooking(r.db.QueryRowContext(ctx, query,
		opt.CustomerName, opt.Phone, opt.ConsultationDate, opt.ConsultationTime, opt.Requirements, opt.Status,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateBooking"), err)
		return booking.Booking{}, repo.ErrFailedToInsert
	}
	return b, nil
}

// GetOneBooking retrieves a single booking by the provided filters.
// Returns zero-value Booking (ID == "") when not found; not-found is not an
// error here.
func (r *implRepository) GetOneBooking(ctx context.Context, opt repo.GetOneBookingOptions) (booking.Booking, error) {
	query := fmt.Sprintf(`SELECT %s FROM bookings WHERE id = $1 LIMIT 1`, bookingColumns)

	b, err := scanBooking(r.db.QueryRowContext(ctx, query, opt.ID))
	if err == sql.ErrNoRows {
		return booking.Booking{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneBooking"), err)
		return booking.Booking{}, repo.ErrFailedToGet
	}
	return b, nil
}

// ListBookings returns a paginated list of bookings and the total count.
func (r *implRepository) ListBookings(ctx context.Context, opt repo.ListBookingsOptions) ([]booking.Booking, int, error) {
	// 1. Count total (without pagination)
	where, args := r.buildListWhere(opt)
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM bookings WHERE %s", where)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListBookings"), err)
		return nil, 0, repo.ErrFailedToList
	}

	// 2. Fetch page, clamping the requested page against the real total
	p := paging.New(opt.Page, opt.Limit, total)
	mods, pageArgs := r.buildListPage(opt, p, len(args))
	query := fmt.Sprintf(`SELECT %s FROM bookings WHERE %s %s`, bookingColumns, where, mods)
	rows, err := r.db.QueryContext(ctx, query, append(args, pageArgs...)...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListBookings"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var bookings []booking.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, 0, repo.ErrFailedToList
		}
		bookings = append(bookings, b)
	}
	return bookings, total, nil
}

// UpdateBooking updates a booking by ID and returns the updated entity.
func (r *implRepository) UpdateBooking(ctx context.Context, opt repo.UpdateBookingOptions) (booking.Booking, error) {
	query := fmt.Sprintf(`
		UPDATE bookings
		SET customer_name = $1, phone = $2, consultation_date = $3, consultation_time = $4,
		    requirements = $5, status = $6, updated_at = $7
		WHERE id = $8
		RETURNING %s`, bookingColumns)

	b, err := scanBooking(r.db.QueryRowContext(ctx, query,
		opt.CustomerName, opt.Phone, opt.ConsultationDate, opt.ConsultationTime,
		opt.Requirements, opt.Status, time.Now(), opt.ID,
	))
	if err == sql.ErrNoRows {
		return booking.Booking{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateBooking"), err)
		return booking.Booking{}, repo.ErrFailedToUpdate
	}
	return b, nil
}

// DeleteBooking removes a booking by ID.
func (r *implRepository) DeleteBooking(ctx context.Context, id string) error {
	const query = `DELETE FROM bookings WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteBooking"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// CountBookingsByStatus aggregates booking counts per status for the
// dashboard.
func (r *implRepository) CountBookingsByStatus(ctx context.Context) (map[string]int, error) {
	const query = `SELECT status, COUNT(*) FROM bookings GROUP BY status`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CountBookingsByStatus"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, repo.ErrFailedToList
		}
		counts[status] = n
	}
	return counts, nil
}

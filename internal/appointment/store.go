package appointment

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/nghia89/landingpage-wedding-sub000/pkg/log"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/paging"
)

const appointmentColumns = `id, booking_id, customer_name, scheduled_date, scheduled_time, location, notes, status, created_at, updated_at`

type postgresStore struct {
	db *sql.DB
	l  log.Logger
}

// NewStore creates a PostgreSQL-backed Store.
func NewStore(db *sql.DB, l log.Logger) Store {
	if db == nil {
		panic("appointment: db is required")
	}
	return &postgresStore{db: db, l: l}
}

func scanAppointment(row interface{ Scan(...any) error }) (Appointment, error) {
	var a Appointment
	err := row.Scan(
		&a.ID, &a.BookingID, &a.CustomerName, &a.ScheduledDate, &a.ScheduledTime,
		&a.Location, &a.Notes, &a.Status, &a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

func (s *postgresStore) Insert(ctx context.Context, a Appointment) (Appointment, error) {
	query := fmt.Sprintf(`
		INSERT INTO appointments (booking_id, customer_name, scheduled_date, scheduled_time, location, notes, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING %s`, appointmentColumns)
	return scanAppointment(s.db.QueryRowContext(ctx, query,
		a.BookingID, a.CustomerName, a.ScheduledDate, a.ScheduledTime, a.Location, a.Notes, a.Status))
}

func (s *postgresStore) GetByID(ctx context.Context, id string) (Appointment, error) {
	query := fmt.Sprintf(`SELECT %s FROM appointments WHERE id = $1 LIMIT 1`, appointmentColumns)
	a, err := scanAppointment(s.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return Appointment{}, nil
	}
	return a, err
}

func (s *postgresStore) List(ctx context.Context, status, date string, page, limit int) ([]Appointment, int, error) {
	var conditions []string
	var args []any
	idx := 1
	if status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", idx))
		args = append(args, status)
		idx++
	}
	if date != "" {
		conditions = append(conditions, fmt.Sprintf("scheduled_date = $%d", idx))
		args = append(args, date)
		idx++
	}
	where := "1=1"
	if len(conditions) > 0 {
		where = strings.Join(conditions, " AND ")
	}

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM appointments WHERE %s", where)
	if err := s.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	p := paging.New(page, limit, total)
	query := fmt.Sprintf(`SELECT %s FROM appointments WHERE %s ORDER BY scheduled_date ASC, scheduled_time ASC LIMIT $%d OFFSET $%d`,
		appointmentColumns, where, idx, idx+1)
	rows, err := s.db.QueryContext(ctx, query, append(args, p.Limit, p.Offset())...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var appointments []Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, 0, err
		}
		appointments = append(appointments, a)
	}
	return appointments, total, nil
}

func (s *postgresStore) Update(ctx context.Context, a Appointment) (Appointment, error) {
	query := fmt.Sprintf(`
		UPDATE appointments
		SET scheduled_date = $1, scheduled_time = $2, location = $3, notes = $4, status = $5, updated_at = $6
		WHERE id = $7
		RETURNING %s`, appointmentColumns)
	out, err := scanAppointment(s.db.QueryRowContext(ctx, query,
		a.ScheduledDate, a.ScheduledTime, a.Location, a.Notes, a.Status, time.Now(), a.ID))
	if err == sql.ErrNoRows {
		return Appointment{}, nil
	}
	return out, err
}

func (s *postgresStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	return err
}

package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/nghia89/landingpage-wedding-sub000/internal/service"
	repo "github.com/nghia89/landingpage-wedding-sub000/internal/service/repository"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/paging"
)

const serviceColumns = `id, name, description, category, price_range, is_active, created_at, updated_at`

func scanService(row interface{ Scan(...any) error }) (service.Service, error) {
	var s service.Service
	err := row.Scan(
		&s.ID, &s.Name, &s.Description, &s.Category, &s.PriceRange,
		&s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

// CreateService inserts a new service row and returns the created entity.
func (r *implRepository) CreateService(ctx context.Context, opt repo.CreateServiceOptions) (service.Service, error) {
	query := fmt.Sprintf(`
		INSERT INTO services (name, description, category, price_range, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING %s`, serviceColumns)

	s, err := scanService(r.db.QueryRowContext(ctx, query,
		opt.Name, opt.Description, opt.Category, opt.PriceRange, opt.IsActive,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateService"), err)
		return service.Service{}, repo.ErrFailedToInsert
	}
	return s, nil
}

// GetOneService retrieves a single service by the provided filters. Returns
// zero-value Service (ID == "") when not found.
func (r *implRepository) GetOneService(ctx context.Context, opt repo.GetOneServiceOptions) (service.Service, error) {
	where, args := r.buildGetOneWhere(opt)
	query := fmt.Sprintf(`SELECT %s FROM services WHERE %s LIMIT 1`, serviceColumns, where)

	s, err := scanService(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return service.Service{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneService"), err)
		return service.Service{}, repo.ErrFailedToGet
	}
	return s, nil
}

// ListServices returns a paginated list of services and the total count.
func (r *implRepository) ListServices(ctx context.Context, opt repo.ListServicesOptions) ([]service.Service, int, error) {
	where, args := r.buildListWhere(opt)
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM services WHERE %s", where)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListServices"), err)
		return nil, 0, repo.ErrFailedToList
	}

	p := paging.New(opt.Page, opt.Limit, total)
	mods, pageArgs := r.buildListPage(opt, p, len(args))
	query := fmt.Sprintf(`SELECT %s FROM services WHERE %s %s`, serviceColumns, where, mods)
	rows, err := r.db.QueryContext(ctx, query, append(args, pageArgs...)...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListServices"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var services []service.Service
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, 0, repo.ErrFailedToList
		}
		services = append(services, s)
	}
	return services, total, nil
}

// UpdateService updates a service by ID and returns the updated entity.
func (r *implRepository) UpdateService(ctx context.Context, opt repo.UpdateServiceOptions) (service.Service, error) {
	query := fmt.Sprintf(`
		UPDATE services
		SET name = $1, description = $2, category = $3, price_range = $4, is_active = $5, updated_at = $6
		WHERE id = $7
		RETURNING %s`, serviceColumns)

	s, err := scanService(r.db.QueryRowContext(ctx, query,
		opt.Name, opt.Description, opt.Category, opt.PriceRange, opt.IsActive, time.Now(), opt.ID,
	))
	if err == sql.ErrNoRows {
		return service.Service{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateService"), err)
		return service.Service{}, repo.ErrFailedToUpdate
	}
	return s, nil
}

// DeleteService removes a service by ID.
func (r *implRepository) DeleteService(ctx context.Context, id string) error {
	const query = `DELETE FROM services WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteService"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// CountServices returns the total number of services (dashboard).
func (r *implRepository) CountServices(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM services`
	var n int
	if err := r.db.QueryRowContext(ctx, query).Scan(&n); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CountServices"), err)
		return 0, repo.ErrFailedToList
	}
	return n, nil
}

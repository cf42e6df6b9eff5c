package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/nghia89/landingpage-wedding-sub000/internal/promotion"
	repo "github.com/nghia89/landingpage-wedding-sub000/internal/promotion/repository"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/paging"
)

const promotionColumns = `id, title, description, discount, start_date, end_date, is_active, created_at, updated_at`

func scanPromotion(row interface{ Scan(...any) error }) (promotion.Promotion, error) {
	var p promotion.Promotion
	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.Discount, &p.StartDate, &p.EndDate,
		&p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

// CreatePromotion inserts a new promotion row and returns the created entity.
func (r *implRepository) CreatePromotion(ctx context.Context, opt repo.CreatePromotionOptions) (promotion.Promotion, error) {
	query := fmt.Sprintf(`
		INSERT INTO promotions (title, description, discount, start_date, end_date, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING %s`, promotionColumns)

	p, err := scanPromotion(r.db.QueryRowContext(ctx, query,
		opt.Title, opt.Description, opt.Discount, opt.StartDate, opt.EndDate, opt.IsActive,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreatePromotion"), err)
		return promotion.Promotion{}, repo.ErrFailedToInsert
	}
	return p, nil
}

// GetOnePromotion retrieves a single promotion by ID. Returns zero-value
// Promotion (ID == "") when not found.
func (r *implRepository) GetOnePromotion(ctx context.Context, id string) (promotion.Promotion, error) {
	query := fmt.Sprintf(`SELECT %s FROM promotions WHERE id = $1 LIMIT 1`, promotionColumns)

	p, err := scanPromotion(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return promotion.Promotion{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOnePromotion"), err)
		return promotion.Promotion{}, repo.ErrFailedToGet
	}
	return p, nil
}

// ListPromotions returns a paginated list of promotions and the total count,
// newest campaign first.
func (r *implRepository) ListPromotions(ctx context.Context, opt repo.ListPromotionsOptions) ([]promotion.Promotion, int, error) {
	where := "1=1"
	var args []any
	if opt.IsActive != nil {
		where = "is_active = $1"
		args = append(args, *opt.IsActive)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM promotions WHERE %s", where)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListPromotions"), err)
		return nil, 0, repo.ErrFailedToList
	}

	p := paging.New(opt.Page, opt.Limit, total)
	idx := len(args) + 1
	query := fmt.Sprintf(`SELECT %s FROM promotions WHERE %s ORDER BY start_date DESC LIMIT $%d OFFSET $%d`,
		promotionColumns, where, idx, idx+1)
	rows, err := r.db.QueryContext(ctx, query, append(args, p.Limit, p.Offset())...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListPromotions"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var promotions []promotion.Promotion
	for rows.Next() {
		p, err := scanPromotion(rows)
		if err != nil {
			return nil, 0, repo.ErrFailedToList
		}
		promotions = append(promotions, p)
	}
	return promotions, total, nil
}

// UpdatePromotion updates a promotion by ID and returns the updated entity.
func (r *implRepository) UpdatePromotion(ctx context.Context, opt repo.UpdatePromotionOptions) (promotion.Promotion, error) {
	query := fmt.Sprintf(`
		UPDATE promotions
		SET title = $1, description = $2, discount = $3, start_date = $4, end_date = $5, is_active = $6, updated_at = $7
		WHERE id = $8
		RETURNING %s`, promotionColumns)

	p, err := scanPromotion(r.db.QueryRowContext(ctx, query,
		opt.Title, opt.Description, opt.Discount, opt.StartDate, opt.EndDate, opt.IsActive, time.Now(), opt.ID,
	))
	if err == sql.ErrNoRows {
		return promotion.Promotion{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdatePromotion"), err)
		return promotion.Promotion{}, repo.ErrFailedToUpdate
	}
	return p, nil
}

// DeletePromotion removes a promotion by ID.
func (r *implRepository) DeletePromotion(ctx context.Context, id string) error {
	const query = `DELETE FROM promotions WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeletePromotion"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/nghia89/landingpage-wedding-sub000/internal/review"
	repo "github.com/nghia89/landingpage-wedding-sub000/internal/review/repository"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/paging"
)

const reviewColumns = `id, customer_name, rating, content, is_approved, created_at, updated_at`

func scanReview(row interface{ Scan(...any) error }) (review.Review, error) {
	var rv review.Review
	err := row.Scan(
		&rv.ID, &rv.CustomerName, &rv.Rating, &rv.Content, &rv.IsApproved,
		&rv.CreatedAt, &rv.UpdatedAt,
	)
	return rv, err
}

// CreateReview inserts a new review row and returns the created entity.
func (r *implRepository) CreateReview(ctx context.Context, opt repo.CreateReviewOptions) (review.Review, error) {
	query := fmt.Sprintf(`
		INSERT INTO reviews (customer_name, rating, content, is_approved, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING %s`, reviewColumns)

	rv, err := scanReview(r.db.QueryRowContext(ctx, query,
		opt.CustomerName, opt.Rating, opt.Content, opt.IsApproved,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateReview"), err)
		return review.Review{}, repo.ErrFailedToInsert
	}
	return rv, nil
}

// GetOneReview retrieves a single review by ID. Returns zero-value Review
// (ID == "") when not found.
func (r *implRepository) GetOneReview(ctx context.Context, id string) (review.Review, error) {
	query := fmt.Sprintf(`SELECT %s FROM reviews WHERE id = $1 LIMIT 1`, reviewColumns)

	rv, err := scanReview(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return review.Review{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneReview"), err)
		return review.Review{}, repo.ErrFailedToGet
	}
	return rv, nil
}

// ListReviews returns a paginated list of reviews and the total count.
func (r *implRepository) ListReviews(ctx context.Context, opt repo.ListReviewsOptions) ([]review.Review, int, error) {
	var conditions []string
	var args []any
	idx := 1

	if opt.Rating > 0 {
		conditions = append(conditions, fmt.Sprintf("rating = $%d", idx))
		args = append(args, opt.Rating)
		idx++
	}
	if opt.Approved != nil {
		conditions = append(conditions, fmt.Sprintf("is_approved = $%d", idx))
		args = append(args, *opt.Approved)
		idx++
	}
	where := "1=1"
	if len(conditions) > 0 {
		where = strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM reviews WHERE %s", where)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListReviews"), err)
		return nil, 0, repo.ErrFailedToList
	}

	p := paging.New(opt.Page, opt.Limit, total)
	query := fmt.Sprintf(`SELECT %s FROM reviews WHERE %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		reviewColumns, where, idx, idx+1)
	rows, err := r.db.QueryContext(ctx, query, append(args, p.Limit, p.Offset())...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListReviews"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var reviews []review.Review
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, 0, repo.ErrFailedToList
		}
		reviews = append(reviews, rv)
	}
	return reviews, total, nil
}

// UpdateReview updates a review by ID and returns the updated entity.
func (r *implRepository) UpdateReview(ctx context.Context, opt repo.UpdateReviewOptions) (review.Review, error) {
	query := fmt.Sprintf(`
		UPDATE reviews
		SET customer_name = $1, rating = $2, content = $3, is_approved = $4, updated_at = $5
		WHERE id = $6
		RETURNING %s`, reviewColumns)

	rv, err := scanReview(r.db.QueryRowContext(ctx, query,
		opt.CustomerName, opt.Rating, opt.Content, opt.IsApproved, time.Now(), opt.ID,
	))
	if err == sql.ErrNoRows {
		return review.Review{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateReview"), err)
		return review.Review{}, repo.ErrFailedToUpdate
	}
	return rv, nil
}

// DeleteReview removes a review by ID.
func (r *implRepository) DeleteReview(ctx context.Context, id string) error {
	const query = `DELETE FROM reviews WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteReview"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// AggregateRatings computes the average rating over approved reviews.
func (r *implRepository) AggregateRatings(ctx context.Context) (repo.RatingAggregate, error) {
	const query = `SELECT COALESCE(AVG(rating), 0), COUNT(*) FROM reviews WHERE is_approved = TRUE`
	var agg repo.RatingAggregate
	if err := r.db.QueryRowContext(ctx, query).Scan(&agg.Average, &agg.Count); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("AggregateRatings"), err)
		return repo.RatingAggregate{}, repo.ErrFailedToList
	}
	return agg, nil
}

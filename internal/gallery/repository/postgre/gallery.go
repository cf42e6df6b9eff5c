package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/nghia89/landingpage-wedding-sub000/internal/gallery"
	repo "github.com/nghia89/landingpage-wedding-sub000/internal/gallery/repository"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/paging"
)

const imageColumns = `id, title, image_url, category, sort_order, created_at, updated_at`

func scanImage(row interface{ Scan(...any) error }) (gallery.Image, error) {
	var img gallery.Image
	err := row.Scan(
		&img.ID, &img.Title, &img.ImageURL, &img.Category, &img.SortOrder,
		&img.CreatedAt, &img.UpdatedAt,
	)
	return img, err
}

// CreateImage inserts a new gallery image row and returns the created entity.
func (r *implRepository) CreateImage(ctx context.Context, opt repo.CreateImageOptions) (gallery.Image, error) {
	query := fmt.Sprintf(`
		INSERT INTO gallery_images (title, image_url, category, sort_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING %s`, imageColumns)

	img, err := scanImage(r.db.QueryRowContext(ctx, query,
		opt.Title, opt.ImageURL, opt.Category, opt.SortOrder,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateImage"), err)
		return gallery.Image{}, repo.ErrFailedToInsert
	}
	return img, nil
}

// GetOneImage retrieves a single image by ID. Returns zero-value Image
// (ID == "") when not found.
func (r *implRepository) GetOneImage(ctx context.Context, id string) (gallery.Image, error) {
	query := fmt.Sprintf(`SELECT %s FROM gallery_images WHERE id = $1 LIMIT 1`, imageColumns)

	img, err := scanImage(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return gallery.Image{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneImage"), err)
		return gallery.Image{}, repo.ErrFailedToGet
	}
	return img, nil
}

// ListImages returns a paginated list of images and the total count, ordered
// by sort_order then recency.
func (r *implRepository) ListImages(ctx context.Context, opt repo.ListImagesOptions) ([]gallery.Image, int, error) {
	var conditions []string
	var args []any
	if opt.Category != "" {
		conditions = append(conditions, "category = $1")
		args = append(args, opt.Category)
	}
	where := "1=1"
	if len(conditions) > 0 {
		where = strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM gallery_images WHERE %s", where)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListImages"), err)
		return nil, 0, repo.ErrFailedToList
	}

	p := paging.New(opt.Page, opt.Limit, total)
	idx := len(args) + 1
	query := fmt.Sprintf(`SELECT %s FROM gallery_images WHERE %s ORDER BY sort_order ASC, created_at DESC LIMIT $%d OFFSET $%d`,
		imageColumns, where, idx, idx+1)
	rows, err := r.db.QueryContext(ctx, query, append(args, p.Limit, p.Offset())...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListImages"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var images []gallery.Image
	for rows.Next() {
		img, err := scanImage(rows)
		if err != nil {
			return nil, 0, repo.ErrFailedToList
		}
		images = append(images, img)
	}
	return images, total, nil
}

// UpdateImage updates an image by ID and returns the updated entity.
func (r *implRepository) UpdateImage(ctx context.Context, opt repo.UpdateImageOptions) (gallery.Image, error) {
	query := fmt.Sprintf(`
		UPDATE gallery_images
		SET title = $1, image_url = $2, category = $3, sort_order = $4, updated_at = $5
		WHERE id = $6
		RETURNING %s`, imageColumns)

	img, err := scanImage(r.db.QueryRowContext(ctx, query,
		opt.Title, opt.ImageURL, opt.Category, opt.SortOrder, time.Now(), opt.ID,
	))
	if err == sql.ErrNoRows {
		return gallery.Image{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateImage"), err)
		return gallery.Image{}, repo.ErrFailedToUpdate
	}
	return img, nil
}

// DeleteImage removes an image by ID.
func (r *implRepository) DeleteImage(ctx context.Context, id string) error {
	const query = `DELETE FROM gallery_images WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteImage"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// CountImages returns the total number of gallery images (dashboard).
func (r *implRepository) CountImages(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM gallery_images`
	var n int
	if err := r.db.QueryRowContext(ctx, query).Scan(&n); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CountImages"), err)
		return 0, repo.ErrFailedToList
	}
	return n, nil
}

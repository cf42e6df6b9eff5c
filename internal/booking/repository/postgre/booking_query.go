package postgre

import (
	"fmt"
	"strings"

	repo "github.com/nghia89/landingpage-wedding-sub000/internal/booking/repository"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/paging"
)

// buildListWhere builds the WHERE clause + args shared by the count and page
// queries. All non-empty filters are applied as AND conditions.
func (r *implRepository) buildListWhere(opt repo.ListBookingsOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", idx))
		args = append(args, opt.Status)
		idx++
	}
	if opt.Date != "" {
		conditions = append(conditions, fmt.Sprintf("consultation_date = $%d", idx))
		args = append(args, opt.Date)
		idx++
	}
	if opt.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(customer_name ILIKE $%d OR phone ILIKE $%d)", idx, idx))
		args = append(args, "%"+opt.Search+"%")
		idx++
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListPage builds the ORDER + LIMIT + OFFSET tail from the clamped
// pagination. argOffset is the number of placeholders the WHERE clause
// already consumed.
func (r *implRepository) buildListPage(opt repo.ListBookingsOptions, p paging.Pagination, argOffset int) (string, []any) {
	var parts []string
	var args []any
	idx := argOffset + 1

	orderBy := opt.OrderBy
	if orderBy == "" {
		orderBy = "created_at DESC"
	}
	parts = append(parts, fmt.Sprintf("ORDER BY %s", orderBy))

	parts = append(parts, fmt.Sprintf("LIMIT $%d", idx))
	args = append(args, p.Limit)
	idx++

	if off := p.Offset(); off > 0 {
		parts = append(parts, fmt.Sprintf("OFFSET $%d", idx))
		args = append(args, off)
	}

	return strings.Join(parts, " "), args
}

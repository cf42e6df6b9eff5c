package postgre

import (
	"fmt"
	"strings"

	repo "github.com/nghia89/landingpage-wedding-sub000/internal/service/repository"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/paging"
)

// buildGetOneWhere builds the WHERE clause for GetOneService. All non-empty
// fields are applied as AND conditions.
func (r *implRepository) buildGetOneWhere(opt repo.GetOneServiceOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != "" {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.Name != "" {
		conditions = append(conditions, fmt.Sprintf("name = $%d", idx))
		args = append(args, opt.Name)
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListWhere builds the shared WHERE clause + args for count and page
// queries.
func (r *implRepository) buildListWhere(opt repo.ListServicesOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.Category != "" {
		conditions = append(conditions, fmt.Sprintf("category = $%d", idx))
		args = append(args, opt.Category)
		idx++
	}
	if opt.IsActive != nil {
		conditions = append(conditions, fmt.Sprintf("is_active = $%d", idx))
		args = append(args, *opt.IsActive)
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListPage builds the ORDER + LIMIT + OFFSET tail from the clamped
// pagination.
func (r *implRepository) buildListPage(opt repo.ListServicesOptions, p paging.Pagination, argOffset int) (string, []any) {
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

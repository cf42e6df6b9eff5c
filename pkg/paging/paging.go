package paging

// Pagination is the pagination block of the API response envelope.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Normalize clamps page/limit into sane bounds before a query runs.
func Normalize(page, limit int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit
}

// New computes the Pagination for a result set. An out-of-range page is
// clamped to the last page so every list endpoint behaves the same way.
func New(page, limit, total int) Pagination {
	page, limit = Normalize(page, limit)

	pages := total / limit
	if total%limit != 0 {
		pages++
	}
	if pages == 0 {
		pages = 1
	}
	if page > pages {
		page = pages
	}

	return Pagination{Page: page, Limit: limit, Total: total, Pages: pages}
}

// Offset returns the SQL offset for the (already clamped) page.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

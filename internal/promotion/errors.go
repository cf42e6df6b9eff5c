package promotion

import "errors"

var (
	ErrPromotionNotFound = errors.New("promotion not found")
	ErrInvalidDateRange  = errors.New("promotion date range is invalid")
)

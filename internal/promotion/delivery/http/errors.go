package http

import (
	"github.com/nghia89/landingpage-wedding-sub000/internal/promotion"
	pkgErrors "github.com/nghia89/landingpage-wedding-sub000/pkg/errors"
)

var errIDRequired = pkgErrors.NewHTTPError(400, "promotion id is required")

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case promotion.ErrPromotionNotFound:
		return pkgErrors.NewHTTPError(404, "Promotion not found")
	case promotion.ErrInvalidDateRange:
		return pkgErrors.NewHTTPError(400, "Promotion dates must be valid and start before end")
	default:
		return pkgErrors.NewHTTPError(500, "Internal server error")
	}
}

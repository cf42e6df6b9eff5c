package http

import (
	"github.com/nghia89/landingpage-wedding-sub000/internal/review"
	pkgErrors "github.com/nghia89/landingpage-wedding-sub000/pkg/errors"
)

var errIDRequired = pkgErrors.NewHTTPError(400, "review id is required")

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case review.ErrReviewNotFound:
		return pkgErrors.NewHTTPError(404, "Review not found")
	case review.ErrInvalidRating:
		return pkgErrors.NewHTTPError(400, "Rating must be between 1 and 5")
	default:
		return pkgErrors.NewHTTPError(500, "Internal server error")
	}
}

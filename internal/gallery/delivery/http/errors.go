package http

import (
	"github.com/nghia89/landingpage-wedding-sub000/internal/gallery"
	pkgErrors "github.com/nghia89/landingpage-wedding-sub000/pkg/errors"
)

var errIDRequired = pkgErrors.NewHTTPError(400, "image id is required")

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case gallery.ErrImageNotFound:
		return pkgErrors.NewHTTPError(404, "Gallery image not found")
	case gallery.ErrInvalidURL:
		return pkgErrors.NewHTTPError(400, "Image url must be an absolute http(s) URL")
	default:
		return pkgErrors.NewHTTPError(500, "Internal server error")
	}
}

package http

import (
	"github.com/nghia89/landingpage-wedding-sub000/internal/service"
	pkgErrors "github.com/nghia89/landingpage-wedding-sub000/pkg/errors"
)

var errIDRequired = pkgErrors.NewHTTPError(400, "service id is required")

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case service.ErrServiceNotFound:
		return pkgErrors.NewHTTPError(404, "Service not found")
	case service.ErrDuplicateName:
		return pkgErrors.NewHTTPError(409, "Service name already exists")
	default:
		return pkgErrors.NewHTTPError(500, "Internal server error")
	}
}

package errors

import "fmt"

// HTTPError is an error with an associated HTTP status code. Delivery layers
// map domain errors into HTTPErrors; pkg/response reads the status back out.
type HTTPError struct {
	Status  int
	Message string
}

// NewHTTPError creates an HTTPError with the given status and message.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{Status: status, Message: message}
}

func (e *HTTPError) Error() string {
	return e.Message
}

// StatusOf returns the HTTP status carried by err, or fallback when err is
// not an HTTPError.
func StatusOf(err error, fallback int) int {
	if he, ok := err.(*HTTPError); ok {
		return he.Status
	}
	return fallback
}

// Wrapf annotates err with a formatted prefix, preserving %w semantics.
func Wrapf(err error, format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, err)...)
}

package gallery

import "errors"

var (
	ErrImageNotFound = errors.New("gallery image not found")
	ErrInvalidURL    = errors.New("image url is invalid")
)

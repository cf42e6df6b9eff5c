package newsletter

import "errors"

var ErrInvalidEmail = errors.New("email is invalid")

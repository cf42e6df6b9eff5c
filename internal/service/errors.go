package service

import "errors"

var (
	ErrServiceNotFound = errors.New("service not found")
	ErrDuplicateName   = errors.New("service name already exists")
)

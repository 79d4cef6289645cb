package services

import "errors"

var (
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("conflict")
	ErrValidation  = errors.New("validation failed")
	ErrNoSession   = errors.New("no user is logged in")
	ErrUnavailable = errors.New("service not configured")
)

package services

import "errors"

// Sentinel errors the handlers map onto HTTP status codes.
var (
	ErrNotFound        = errors.New("resource not found")
	ErrConflict        = errors.New("resource already exists")
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidLogin    = errors.New("invalid username or password")
	ErrVaccineNotFound = errors.New("vaccine not found")
)

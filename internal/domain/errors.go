package domain

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrServiceNotFound = errors.New("service not found")
	ErrBookingNotFound = errors.New("booking not found")
)

var (
	ErrUnauthenticated = errors.New("unauthorized access")
	ErrForbidden       = errors.New("forbidden access")
)

var (
	ErrPaymentProvider = errors.New("payment provider unavailable")
)

var (
	ErrValidation = errors.New("validation error")
	ErrInvalidID  = errors.New("invalid id")
)

var (
	ErrUserExists = errors.New("user already exists")
)

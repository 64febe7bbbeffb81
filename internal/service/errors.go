// Package service defines the error taxonomy shared by the domain
// services. Handlers translate these into HTTP statuses.
package service

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound maps to 404.
	ErrNotFound = errors.New("resource not found")

	// ErrUnauthenticated maps to 401: the caller is anonymous.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrForbidden maps to 403: identified but lacking privilege.
	ErrForbidden = errors.New("forbidden")

	// ErrSeatTaken maps to 409: the seat is already sold for the
	// session, either before the transaction or by a racing one.
	ErrSeatTaken = errors.New("seat already taken for this session")

	// ErrAlreadyExists maps to 409 on unique catalog fields.
	ErrAlreadyExists = errors.New("resource already exists")

	// ErrInvalidInput maps to 400 for malformed input shapes.
	ErrInvalidInput = errors.New("invalid input")
)

// ValidationError reports a seat coordinate outside the dome geometry.
// Field is "row" or "seat"; RangeName names the dome attribute that
// defines the upper bound.
type ValidationError struct {
	Field     string
	RangeName string
	Max       int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s number must be in available range: (1, %s): (1, %d)",
		e.Field, e.RangeName, e.Max)
}

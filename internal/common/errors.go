// Package common contains small utilities shared across the project:
// sentinel errors and formatting helpers for dates and amounts.
package common

import "errors"

var (
	// ErrInvalidAmount is returned when a user-supplied amount does not parse
	// as a number.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidDate is returned when a user-supplied date is not in the
	// YYYY-MM-DD format.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidMonth is returned when a month selector is not in the
	// YYYY-MM format.
	ErrInvalidMonth = errors.New("invalid month")
)

package core

import "errors"

// Domain validation errors
var (
	// ErrEmptyMessage indicates a chat message with no content.
	ErrEmptyMessage = errors.New("message cannot be empty")

	// ErrMessageTooLong indicates a chat message over the allowed length.
	ErrMessageTooLong = errors.New("message exceeds maximum length")

	// ErrNegativeEmployeeCount indicates a negative employee count.
	ErrNegativeEmployeeCount = errors.New("employee count cannot be negative")

	// ErrNegativeRevenue indicates a negative annual revenue.
	ErrNegativeRevenue = errors.New("annual revenue cannot be negative")

	// ErrNegativeYears indicates negative years in operation.
	ErrNegativeYears = errors.New("years in operation cannot be negative")
)

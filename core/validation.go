package core

import (
	"fmt"
	"unicode/utf8"
)

// MaxMessageLength is the maximum chat message length in characters.
const MaxMessageLength = 2000

// ValidateMessage validates a chat message according to domain rules.
//
// Validation rules:
//   - Message must not be empty
//   - Message must not exceed MaxMessageLength characters
func ValidateMessage(message string) error {
	if message == "" {
		return ErrEmptyMessage
	}
	if utf8.RuneCountInString(message) > MaxMessageLength {
		return fmt.Errorf("%w: %d characters", ErrMessageTooLong, utf8.RuneCountInString(message))
	}
	return nil
}

// ValidateBusinessContext validates the optional business attributes.
// A nil context is valid.
func ValidateBusinessContext(bc *BusinessContext) error {
	if bc == nil {
		return nil
	}
	if bc.EmployeeCount != nil && *bc.EmployeeCount < 0 {
		return ErrNegativeEmployeeCount
	}
	if bc.AnnualRevenue != nil && *bc.AnnualRevenue < 0 {
		return ErrNegativeRevenue
	}
	if bc.YearsInOperation != nil && *bc.YearsInOperation < 0 {
		return ErrNegativeYears
	}
	return nil
}

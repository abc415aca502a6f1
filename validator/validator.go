// Package validator provides input validation for the application
package validator

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

var (
	// ErrInvalidFormat is returned when an id or quantity is malformed
	ErrInvalidFormat = errors.New("invalid format")
	// ErrEmptyField is returned when a required text field is blank
	ErrEmptyField = errors.New("cannot be empty")
)

// ID validates that input is exactly four decimal digits and returns the
// parsed value. Leading zeros are accepted ("0042" is a valid id).
func ID(input string) (int64, error) {
	err := validation.Validate(input,
		validation.Required,
		is.Digit,
		validation.Length(4, 4),
	)
	if err != nil {
		return 0, fmt.Errorf("%w: ID must be a 4-digit number", ErrInvalidFormat)
	}

	id, err := strconv.ParseInt(input, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: ID must be a 4-digit number", ErrInvalidFormat)
	}
	return id, nil
}

// Quantity validates that input is a plain decimal string and returns the
// parsed value. Non-negative by construction: a sign is not a digit.
func Quantity(input string) (int64, error) {
	err := validation.Validate(input,
		validation.Required,
		is.Digit,
	)
	if err != nil {
		return 0, fmt.Errorf("%w: quantity must be a non-negative number", ErrInvalidFormat)
	}

	qty, err := strconv.ParseInt(input, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: quantity must be a non-negative number", ErrInvalidFormat)
	}
	return qty, nil
}

// NonEmpty trims input and validates that something is left. The label names
// the field in the returned error.
func NonEmpty(input, label string) (string, error) {
	trimmed := strings.TrimSpace(input)
	if err := validation.Validate(trimmed, validation.Required); err != nil {
		return "", fmt.Errorf("%s %w", label, ErrEmptyField)
	}
	return trimmed, nil
}

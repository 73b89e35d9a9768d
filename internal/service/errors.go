package service

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCart is returned when checkout is attempted with no cart lines.
	ErrEmptyCart = errors.New("cart is empty, nothing to checkout")

	// ErrAlreadyPaid is returned when a payment callback repeats for an
	// order whose status is already paid.
	ErrAlreadyPaid = errors.New("order is already paid")
)

// ValidationError reports a missing or malformed input field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid field %q: %s", e.Field, e.Reason)
}

// IsValidationError reports whether err is a rejected-input error, covering
// both field errors and the empty-cart case.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve) || errors.Is(err, ErrEmptyCart)
}

package models

import "errors"

// ValidationError is the recoverable, user-facing error class: missing
// required fields, duplicate unique keys, empty result sets for invoice
// generation. It is surfaced immediately to the caller; nothing is
// partially committed.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ErrDuplicateFarmerID is returned when a customer insert or edit would
// collide with an existing farmer id (case-insensitive).
var ErrDuplicateFarmerID = &ValidationError{Field: "farmerId", Message: "farmer id already exists"}

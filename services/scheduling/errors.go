package scheduling

import (
	"errors"
	"fmt"
)

var (
	// ErrDoctorNotFound is returned when the queried doctor does not exist.
	ErrDoctorNotFound = errors.New("doctor not found")
	// ErrAppointmentNotFound is returned when the referenced appointment does
	// not exist.
	ErrAppointmentNotFound = errors.New("appointment not found")
	// ErrSelfBooking is returned when a doctor attempts to book themselves.
	ErrSelfBooking = errors.New("doctor and patient cannot be the same account")
	// ErrSlotTaken is returned when the requested slot is already held by a
	// pending appointment, regardless of which patient holds it.
	ErrSlotTaken = errors.New("slot already held by a pending appointment")
	// ErrIllegalTransition is returned when a status update violates the
	// appointment state machine.
	ErrIllegalTransition = errors.New("illegal appointment status transition")
	// ErrUpstreamTimeout is returned when a collaborator call exceeds its
	// timeout. It is retryable and must never be read as "no data".
	ErrUpstreamTimeout = errors.New("collaborator call timed out")
	// ErrUpstreamUnavailable is returned when a collaborator is unreachable.
	ErrUpstreamUnavailable = errors.New("collaborator unavailable")
)

// ValidationError describes malformed input, rejected before any I/O.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func newValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidationError reports whether err is a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

package appointmentRepo

import (
	"context"

	"medibook/models"
)

// AppointmentRepository defines the data access methods used by the
// scheduling service.
type AppointmentRepository interface {
	// GetByID retrieves an appointment by its unique ID.
	GetByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	// GetBookedSlots projects active appointments for a doctor within
	// [startDate, endDate) onto their (date, time) pairs.
	GetBookedSlots(ctx context.Context, doctorID, startDate, endDate string) ([]models.BookedSlot, error)
	// FindPending returns the pending appointment holding the given slot, or
	// (nil, nil) when the slot is free.
	FindPending(ctx context.Context, doctorID, date, time string) (*models.Appointment, error)
	// Insert persists a new appointment. Returns ErrSlotTaken when the slot
	// is already held by a pending appointment.
	Insert(ctx context.Context, appt *models.Appointment) error
	// Revive atomically flips a cancelled appointment for the exact
	// (doctor, patient, date, time) tuple back to pending, overwriting the
	// mutable fields. Returns ErrAppointmentNotFound when no cancelled row
	// exists, ErrSlotTaken when the slot is meanwhile held.
	Revive(ctx context.Context, doctorID, patientID, date, time string, fields models.AppointmentUpdate) (*models.Appointment, error)
	// UpdateStatus atomically moves an appointment from one of the given
	// statuses to a new status. Returns ErrAppointmentNotFound when no row
	// matches (missing or not in an allowed source status).
	UpdateStatus(ctx context.Context, appointmentID string, from []string, to string) (*models.Appointment, error)
	// ListByDoctor returns all appointments booked with a doctor.
	ListByDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error)
	// ListByPatient returns all appointments a patient holds.
	ListByPatient(ctx context.Context, patientID string) ([]models.Appointment, error)
}

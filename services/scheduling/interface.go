package scheduling

import (
	"context"
	"time"

	appointmentRepo "medibook/database/repository/appointment"
	doctorRepo "medibook/database/repository/doctor"
	patientRepo "medibook/database/repository/patient"
	"medibook/models"
)

// SchedulingService exposes availability computation and conflict-safe
// appointment booking.
type SchedulingService interface {
	// GetAvailableWorkingHours computes the open slots for a doctor. With a
	// specificDate the window is that single day; otherwise it spans the next
	// numberOfDays starting today.
	GetAvailableWorkingHours(ctx context.Context, doctorID string, numberOfDays int, specificDate string) (*models.AvailabilityReport, error)
	// BookAppointment books a slot, reviving a cancelled appointment for the
	// same (doctor, patient, date, time) tuple when one exists.
	BookAppointment(ctx context.Context, req BookingRequest) (*models.Appointment, error)
	// CancelAppointment moves a pending or confirmed appointment to cancelled.
	CancelAppointment(ctx context.Context, appointmentID, patientID string) (*models.Appointment, error)
	// ConfirmAppointment moves a pending appointment to confirmed.
	ConfirmAppointment(ctx context.Context, appointmentID string) (*models.Appointment, error)
	// CompleteAppointment moves a pending or confirmed appointment to done.
	CompleteAppointment(ctx context.Context, appointmentID string) (*models.Appointment, error)
	// ListDoctorAppointments returns a doctor's appointments with patient
	// names populated, served from cache when fresh.
	ListDoctorAppointments(ctx context.Context, doctorID string) ([]models.Appointment, error)
	// ListPatientAppointments returns a patient's appointments with doctor
	// names populated, served from cache when fresh.
	ListPatientAppointments(ctx context.Context, patientID string) ([]models.Appointment, error)
}

// BookingRequest carries the fields required to book a slot.
type BookingRequest struct {
	DoctorID  string  `json:"doctorId" binding:"required"`
	PatientID string  `json:"patientId" binding:"required"`
	Date      string  `json:"date" binding:"required"` // "YYYY-MM-DD"
	Time      string  `json:"time" binding:"required"` // "HH:MM"
	Method    string  `json:"method,omitempty"`
	Reason    string  `json:"reason,omitempty"`
	Notes     string  `json:"notes,omitempty"`
	Cost      float64 `json:"cost,omitempty"`
	Location  string  `json:"location,omitempty"`
	Status    string  `json:"status,omitempty"` // defaults to pending
}

// Notifier delivers best-effort push notifications. Failures are logged by
// the caller and never fail a booking.
type Notifier interface {
	SendDoctorPush(ctx context.Context, doctorID, title, body string, data map[string]string) error
	SendPatientPush(ctx context.Context, patientID, title, body string, data map[string]string) error
}

// ReminderScheduler enqueues an appointment reminder to fire before the slot.
type ReminderScheduler interface {
	ScheduleReminder(appt *models.Appointment) error
}

// Clock abstracts wall-clock time so availability computation is testable.
type Clock interface {
	Now() time.Time
}

// RealClock is the production clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// DefaultSchedulingService is the production implementation.
type DefaultSchedulingService struct {
	DoctorRepo  doctorRepo.DoctorRepository
	PatientRepo patientRepo.PatientRepository
	ApptRepo    appointmentRepo.AppointmentRepository
	Notifier    Notifier
	Reminders   ReminderScheduler
	Cache       ListingCache
	Clock       Clock

	// WindowDays is the default availability window when no date is pinned.
	WindowDays int
	// LeadTime is the minimum notice before a slot today can be booked.
	LeadTime time.Duration
}

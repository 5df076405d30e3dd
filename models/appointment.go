package models

import "time"

// Appointment status values.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusDone      = "done"
)

// statusTransitions encodes the appointment state machine. A cancelled
// appointment can only return to pending through the booking revival path,
// never through a generic status update, so cancelled→pending is absent here.
var statusTransitions = map[string][]string{
	StatusPending:   {StatusConfirmed, StatusCancelled, StatusDone},
	StatusConfirmed: {StatusDone, StatusCancelled},
	StatusCancelled: {},
	StatusDone:      {},
}

// CanTransition reports whether an appointment may move from one status to
// another via a regular update.
func CanTransition(from, to string) bool {
	for _, s := range statusTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// ActiveStatuses are the statuses that hold a slot. Cancelled appointments
// never block availability.
var ActiveStatuses = []string{StatusPending, StatusConfirmed, StatusDone}

// Appointment represents a booking of a doctor's slot by a patient.
// Date is "YYYY-MM-DD" and Time is zero-padded "HH:MM", both in UTC.
type Appointment struct {
	ID          string    `bson:"id" json:"id"`
	DoctorID    string    `bson:"doctorId" json:"doctorId"`
	PatientID   string    `bson:"patientId" json:"patientId"`
	Date        string    `bson:"date" json:"date"`
	Time        string    `bson:"time" json:"time"`
	Status      string    `bson:"status" json:"status"`
	Method      string    `bson:"method,omitempty" json:"method,omitempty"` // examination method
	Reason      string    `bson:"reason,omitempty" json:"reason,omitempty"`
	Notes       string    `bson:"notes,omitempty" json:"notes,omitempty"`
	Cost        float64   `bson:"cost,omitempty" json:"cost,omitempty"`
	Location    string    `bson:"location,omitempty" json:"location,omitempty"`
	DoctorName  string    `bson:"-" json:"doctorName,omitempty"`  // populated on listing
	PatientName string    `bson:"-" json:"patientName,omitempty"` // populated on listing
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// AppointmentUpdate holds the mutable fields overwritten when a cancelled
// appointment is revived into a fresh pending booking.
type AppointmentUpdate struct {
	Method   string  `json:"method,omitempty"`
	Reason   string  `json:"reason,omitempty"`
	Notes    string  `json:"notes,omitempty"`
	Cost     float64 `json:"cost,omitempty"`
	Location string  `json:"location,omitempty"`
}

// BookedSlot is the projection of an active appointment onto its (date, time)
// pair, as consumed by the availability computation.
type BookedSlot struct {
	Date string `bson:"date" json:"date"`
	Time string `bson:"time" json:"time"`
}

package scheduling

import (
	"context"
	"errors"
	"time"

	appointmentRepo "medibook/database/repository/appointment"
	doctorRepo "medibook/database/repository/doctor"
	"medibook/models"
	"medibook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BookAppointment books a slot for a patient. An existing cancelled
// appointment for the exact (doctor, patient, date, time) tuple is revived
// instead of inserting a duplicate row; otherwise a new pending appointment
// is inserted under the protection of the unique pending-slot index.
func (s *DefaultSchedulingService) BookAppointment(ctx context.Context, req BookingRequest) (*models.Appointment, error) {
	logger := utils.GetLogger()

	if err := validateBookingRequest(&req); err != nil {
		return nil, err
	}
	if req.DoctorID == req.PatientID {
		return nil, ErrSelfBooking
	}

	if _, err := s.DoctorRepo.GetByID(ctx, req.DoctorID); err != nil {
		if errors.Is(err, doctorRepo.ErrDoctorNotFound) {
			return nil, ErrDoctorNotFound
		}
		return nil, mapUpstreamErr("doctor lookup", err)
	}

	// First-come-first-served slot lock: any pending appointment at this
	// (doctor, date, time) blocks the booking, whoever holds it.
	held, err := s.ApptRepo.FindPending(ctx, req.DoctorID, req.Date, req.Time)
	if err != nil {
		return nil, mapUpstreamErr("pending slot check", err)
	}
	if held != nil {
		return nil, ErrSlotTaken
	}

	fields := models.AppointmentUpdate{
		Method:   req.Method,
		Reason:   req.Reason,
		Notes:    req.Notes,
		Cost:     req.Cost,
		Location: req.Location,
	}

	// Revive a cancelled row for this exact tuple so repeated book/cancel
	// cycles on the same slot never grow the collection.
	appt, err := s.ApptRepo.Revive(ctx, req.DoctorID, req.PatientID, req.Date, req.Time, fields)
	switch {
	case err == nil:
		logger.Info("revived cancelled appointment",
			zap.String("appointmentID", appt.ID),
			zap.String("doctorID", req.DoctorID),
			zap.String("date", req.Date),
			zap.String("time", req.Time))
	case errors.Is(err, appointmentRepo.ErrAppointmentNotFound):
		appt, err = s.insertNew(ctx, req)
		if err != nil {
			return nil, err
		}
	case errors.Is(err, appointmentRepo.ErrSlotTaken):
		return nil, ErrSlotTaken
	default:
		return nil, mapUpstreamErr("appointment revive", err)
	}

	// The booking is durably persisted at this point. Notification and the
	// reminder are best-effort and never roll it back.
	s.notifyBooked(appt)
	if s.Reminders != nil {
		if err := s.Reminders.ScheduleReminder(appt); err != nil {
			logger.Warn("failed to schedule appointment reminder",
				zap.String("appointmentID", appt.ID), zap.Error(err))
		}
	}
	s.invalidateListings(appt.DoctorID, appt.PatientID)

	return appt, nil
}

func (s *DefaultSchedulingService) insertNew(ctx context.Context, req BookingRequest) (*models.Appointment, error) {
	now := s.Clock.Now().UTC()
	status := req.Status
	if status == "" {
		status = models.StatusPending
	}
	appt := &models.Appointment{
		ID:        uuid.New().String(),
		DoctorID:  req.DoctorID,
		PatientID: req.PatientID,
		Date:      req.Date,
		Time:      req.Time,
		Status:    status,
		Method:    req.Method,
		Reason:    req.Reason,
		Notes:     req.Notes,
		Cost:      req.Cost,
		Location:  req.Location,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.ApptRepo.Insert(ctx, appt); err != nil {
		if errors.Is(err, appointmentRepo.ErrSlotTaken) {
			// Lost the race between the pending check and the insert; the
			// unique index kept the slot single-holder.
			return nil, ErrSlotTaken
		}
		return nil, mapUpstreamErr("appointment insert", err)
	}
	return appt, nil
}

// notifyBooked pushes fire-and-forget notifications to both parties.
func (s *DefaultSchedulingService) notifyBooked(appt *models.Appointment) {
	if s.Notifier == nil {
		return
	}
	logger := utils.GetLogger()
	data := map[string]string{
		"type":          "appointment_booked",
		"appointmentId": appt.ID,
		"date":          appt.Date,
		"time":          appt.Time,
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.Notifier.SendDoctorPush(ctx, appt.DoctorID,
			"New appointment request",
			"A patient booked "+appt.Date+" at "+appt.Time, data); err != nil {
			logger.Warn("failed to notify doctor of booking",
				zap.String("appointmentID", appt.ID), zap.Error(err))
		}
		if err := s.Notifier.SendPatientPush(ctx, appt.PatientID,
			"Appointment requested",
			"Your appointment on "+appt.Date+" at "+appt.Time+" is awaiting confirmation", data); err != nil {
			logger.Warn("failed to notify patient of booking",
				zap.String("appointmentID", appt.ID), zap.Error(err))
		}
	}()
}

func validateBookingRequest(req *BookingRequest) error {
	if req.DoctorID == "" {
		return newValidationError("doctorId", "must not be empty")
	}
	if req.PatientID == "" {
		return newValidationError("patientId", "must not be empty")
	}
	if _, err := utils.ParseDate(req.Date); err != nil {
		return newValidationError("date", err.Error())
	}
	hour, minute, err := utils.ParseClock(req.Time)
	if err != nil {
		return newValidationError("time", err.Error())
	}
	// Normalize so "9:05" and "09:05" address the same slot.
	req.Time = utils.FormatClock(hour, minute)

	switch req.Status {
	case "", models.StatusPending, models.StatusConfirmed:
	default:
		return newValidationError("status", "must be pending or confirmed")
	}
	return nil
}

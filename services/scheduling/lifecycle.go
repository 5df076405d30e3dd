package scheduling

import (
	"context"
	"errors"
	"time"

	appointmentRepo "medibook/database/repository/appointment"
	"medibook/models"
	"medibook/utils"

	"go.uber.org/zap"
)

// CancelAppointment moves an appointment to cancelled. Only the patient
// holding the appointment may cancel it. A cancelled appointment can later be
// revived through the booking path, never through a status update.
func (s *DefaultSchedulingService) CancelAppointment(ctx context.Context, appointmentID, patientID string) (*models.Appointment, error) {
	if appointmentID == "" {
		return nil, newValidationError("appointmentId", "must not be empty")
	}
	if patientID == "" {
		return nil, newValidationError("patientId", "must not be empty")
	}

	current, err := s.getAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if current.PatientID != patientID {
		return nil, ErrAppointmentNotFound
	}

	appt, err := s.transition(ctx, current, models.StatusCancelled)
	if err != nil {
		return nil, err
	}

	s.notifyStatusChange(appt, "Appointment cancelled",
		"The appointment on "+appt.Date+" at "+appt.Time+" was cancelled")
	s.invalidateListings(appt.DoctorID, appt.PatientID)
	return appt, nil
}

// ConfirmAppointment moves a pending appointment to confirmed.
func (s *DefaultSchedulingService) ConfirmAppointment(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	if appointmentID == "" {
		return nil, newValidationError("appointmentId", "must not be empty")
	}
	current, err := s.getAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	appt, err := s.transition(ctx, current, models.StatusConfirmed)
	if err != nil {
		return nil, err
	}

	s.notifyStatusChange(appt, "Appointment confirmed",
		"Your appointment on "+appt.Date+" at "+appt.Time+" is confirmed")
	s.invalidateListings(appt.DoctorID, appt.PatientID)
	return appt, nil
}

// CompleteAppointment moves an appointment to done. Done is terminal.
func (s *DefaultSchedulingService) CompleteAppointment(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	if appointmentID == "" {
		return nil, newValidationError("appointmentId", "must not be empty")
	}
	current, err := s.getAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	appt, err := s.transition(ctx, current, models.StatusDone)
	if err != nil {
		return nil, err
	}

	s.invalidateListings(appt.DoctorID, appt.PatientID)
	return appt, nil
}

func (s *DefaultSchedulingService) getAppointment(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	appt, err := s.ApptRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, mapUpstreamErr("appointment lookup", err)
	}
	return appt, nil
}

// transition applies a state-machine move. The repository re-checks the
// source status in its filter, so a concurrent update cannot slip an illegal
// transition through.
func (s *DefaultSchedulingService) transition(ctx context.Context, current *models.Appointment, to string) (*models.Appointment, error) {
	if !models.CanTransition(current.Status, to) {
		return nil, ErrIllegalTransition
	}
	appt, err := s.ApptRepo.UpdateStatus(ctx, current.ID, []string{current.Status}, to)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			// Status changed underneath us between read and write.
			return nil, ErrIllegalTransition
		}
		return nil, mapUpstreamErr("appointment status update", err)
	}
	return appt, nil
}

// notifyStatusChange pushes a fire-and-forget update to both parties.
func (s *DefaultSchedulingService) notifyStatusChange(appt *models.Appointment, title, body string) {
	if s.Notifier == nil {
		return
	}
	logger := utils.GetLogger()
	data := map[string]string{
		"type":          "appointment_status",
		"appointmentId": appt.ID,
		"status":        appt.Status,
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.Notifier.SendDoctorPush(ctx, appt.DoctorID, title, body, data); err != nil {
			logger.Warn("failed to notify doctor of status change",
				zap.String("appointmentID", appt.ID), zap.Error(err))
		}
		if err := s.Notifier.SendPatientPush(ctx, appt.PatientID, title, body, data); err != nil {
			logger.Warn("failed to notify patient of status change",
				zap.String("appointmentID", appt.ID), zap.Error(err))
		}
	}()
}

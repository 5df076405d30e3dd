package scheduling

import (
	"context"
	"time"

	"medibook/models"
	"medibook/utils"

	"go.uber.org/zap"
)

// ListDoctorAppointments returns a doctor's appointments with patient names
// populated, served from cache when a fresh entry exists.
func (s *DefaultSchedulingService) ListDoctorAppointments(ctx context.Context, doctorID string) ([]models.Appointment, error) {
	if doctorID == "" {
		return nil, newValidationError("doctorId", "must not be empty")
	}
	key := doctorListingKey(doctorID)
	if s.Cache != nil {
		if appts, ok := s.Cache.Get(ctx, key); ok {
			return appts, nil
		}
	}

	appts, err := s.ApptRepo.ListByDoctor(ctx, doctorID)
	if err != nil {
		return nil, mapUpstreamErr("appointment listing", err)
	}
	if err := s.populatePatientNames(ctx, appts); err != nil {
		// Names are a display nicety; the listing itself is still valid.
		utils.GetLogger().Warn("failed to populate patient names",
			zap.String("doctorID", doctorID), zap.Error(err))
	}

	if s.Cache != nil {
		s.Cache.Set(ctx, key, appts)
	}
	return appts, nil
}

// ListPatientAppointments returns a patient's appointments with doctor names
// populated, served from cache when a fresh entry exists.
func (s *DefaultSchedulingService) ListPatientAppointments(ctx context.Context, patientID string) ([]models.Appointment, error) {
	if patientID == "" {
		return nil, newValidationError("patientId", "must not be empty")
	}
	key := patientListingKey(patientID)
	if s.Cache != nil {
		if appts, ok := s.Cache.Get(ctx, key); ok {
			return appts, nil
		}
	}

	appts, err := s.ApptRepo.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, mapUpstreamErr("appointment listing", err)
	}
	if err := s.populateDoctorNames(ctx, appts); err != nil {
		utils.GetLogger().Warn("failed to populate doctor names",
			zap.String("patientID", patientID), zap.Error(err))
	}

	if s.Cache != nil {
		s.Cache.Set(ctx, key, appts)
	}
	return appts, nil
}

// populateDoctorNames resolves all doctor names for a listing with a single
// batched query instead of one lookup per appointment.
func (s *DefaultSchedulingService) populateDoctorNames(ctx context.Context, appts []models.Appointment) error {
	ids := make([]string, 0, len(appts))
	seen := make(map[string]bool)
	for _, a := range appts {
		if !seen[a.DoctorID] {
			seen[a.DoctorID] = true
			ids = append(ids, a.DoctorID)
		}
	}
	doctors, err := s.DoctorRepo.GetByIDs(ctx, ids)
	if err != nil {
		return err
	}
	names := make(map[string]string, len(doctors))
	for _, d := range doctors {
		names[d.ID] = d.Name
	}
	for i := range appts {
		appts[i].DoctorName = names[appts[i].DoctorID]
	}
	return nil
}

// populatePatientNames resolves all patient names for a listing with a single
// batched query.
func (s *DefaultSchedulingService) populatePatientNames(ctx context.Context, appts []models.Appointment) error {
	ids := make([]string, 0, len(appts))
	seen := make(map[string]bool)
	for _, a := range appts {
		if !seen[a.PatientID] {
			seen[a.PatientID] = true
			ids = append(ids, a.PatientID)
		}
	}
	patients, err := s.PatientRepo.GetByIDs(ctx, ids)
	if err != nil {
		return err
	}
	names := make(map[string]string, len(patients))
	for _, p := range patients {
		names[p.ID] = p.Name
	}
	for i := range appts {
		appts[i].PatientName = names[appts[i].PatientID]
	}
	return nil
}

// invalidateListings drops the cached listings touched by a write to a
// doctor's or patient's appointments.
func (s *DefaultSchedulingService) invalidateListings(doctorID, patientID string) {
	if s.Cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	s.Cache.Invalidate(ctx, doctorListingKey(doctorID), patientListingKey(patientID))
}

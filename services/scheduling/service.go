package scheduling

import (
	"context"
	"errors"
	"fmt"
	"time"

	doctorRepo "medibook/database/repository/doctor"
	"medibook/models"
	"medibook/utils"

	"go.uber.org/zap"
)

// NoAvailabilityConfiguredMessage distinguishes a doctor with no working
// hours at all from one whose window is simply fully booked.
const NoAvailabilityConfiguredMessage = "doctor has no working hours configured"

// GetAvailableWorkingHours fetches the doctor's recurring rules and the
// booked slots for the window, then computes the day-by-day open slots.
func (s *DefaultSchedulingService) GetAvailableWorkingHours(ctx context.Context, doctorID string, numberOfDays int, specificDate string) (*models.AvailabilityReport, error) {
	logger := utils.GetLogger()

	if doctorID == "" {
		return nil, newValidationError("doctorId", "must not be empty")
	}
	if numberOfDays <= 0 {
		numberOfDays = s.WindowDays
	}

	// Validate the pinned date before any I/O.
	var pinnedDay time.Time
	pinned := specificDate != ""
	if pinned {
		var err error
		pinnedDay, err = utils.ParseDate(specificDate)
		if err != nil {
			return nil, newValidationError("specificDate", err.Error())
		}
	}

	doctor, err := s.DoctorRepo.GetByID(ctx, doctorID)
	if err != nil {
		if errors.Is(err, doctorRepo.ErrDoctorNotFound) {
			return nil, ErrDoctorNotFound
		}
		return nil, mapUpstreamErr("doctor lookup", err)
	}

	now := s.Clock.Now().UTC()
	var start, end time.Time
	if pinned {
		start = pinnedDay
		end = start.AddDate(0, 0, 1)
	} else {
		start = utils.StartOfDayUTC(now)
		end = start.AddDate(0, 0, numberOfDays)
	}

	report := &models.AvailabilityReport{
		DoctorID:    doctor.ID,
		DoctorName:  doctor.Name,
		SearchStart: utils.FormatDisplayDate(start),
		SearchEnd:   utils.FormatDisplayDate(end.AddDate(0, 0, -1)),
		Days:        []models.AvailableDay{},
	}

	// "Not configured" is a legitimate state, not a fault.
	if len(doctor.WorkingHours) == 0 {
		report.Message = NoAvailabilityConfiguredMessage
		return report, nil
	}

	booked, err := s.ApptRepo.GetBookedSlots(ctx, doctorID, utils.FormatDate(start), utils.FormatDate(end))
	if err != nil {
		return nil, mapUpstreamErr("booked slot query", err)
	}

	days := ComputeAvailability(AvailabilityParams{
		Rules:    doctor.WorkingHours,
		Booked:   groupBookedSlots(booked),
		Start:    start,
		End:      end,
		Now:      now,
		Pinned:   pinned,
		LeadTime: s.LeadTime,
	})

	report.Days = days
	report.TotalDays = len(days)
	for _, d := range days {
		report.TotalSlots += d.TotalSlots
	}

	logger.Debug("computed availability",
		zap.String("doctorID", doctorID),
		zap.Int("days", report.TotalDays),
		zap.Int("slots", report.TotalSlots))
	return report, nil
}

// mapUpstreamErr distinguishes a timed-out collaborator call from an
// unreachable one. A timeout must surface as retryable, never as "no data".
func mapUpstreamErr(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s: %v", ErrUpstreamTimeout, op, err)
	}
	return fmt.Errorf("%w: %s: %v", ErrUpstreamUnavailable, op, err)
}

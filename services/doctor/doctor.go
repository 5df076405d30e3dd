package doctor

import (
	"context"
	"fmt"

	"medibook/models"
	"medibook/utils"

	"go.uber.org/zap"
)

// GetDoctorByID retrieves a doctor profile.
func (s *DefaultDoctorService) GetDoctorByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	return s.Repo.GetByID(ctx, doctorID)
}

// UpdateClinicInfo applies a partial clinic profile update. Working-hour
// rules are merged into the doctor's existing set with duplicates collapsed.
func (s *DefaultDoctorService) UpdateClinicInfo(ctx context.Context, doctorID string, update models.ClinicInfoUpdate) (*models.Doctor, error) {
	logger := utils.GetLogger()

	current, err := s.Repo.GetByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if update.ClinicName != "" {
		fields["clinicName"] = update.ClinicName
	}
	if update.Address != "" {
		fields["address"] = update.Address
	}
	if update.Specialty != "" {
		fields["specialty"] = update.Specialty
	}
	if len(update.WorkingHours) > 0 {
		merged, err := MergeWorkingHours(current.WorkingHours, update.WorkingHours)
		if err != nil {
			return nil, err
		}
		fields["workingHours"] = merged
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("no updatable fields provided")
	}

	if err := s.Repo.UpdateClinicInfo(ctx, doctorID, fields); err != nil {
		logger.Error("Failed to update clinic info",
			zap.String("doctorID", doctorID), zap.Error(err))
		return nil, fmt.Errorf("failed to update clinic info: %w", err)
	}

	return s.Repo.GetByID(ctx, doctorID)
}

package doctor

import (
	"context"

	doctorRepo "medibook/database/repository/doctor"
	"medibook/models"
)

// DoctorService exposes doctor profile reads and clinic-info updates.
type DoctorService interface {
	GetDoctorByID(ctx context.Context, doctorID string) (*models.Doctor, error)
	// UpdateClinicInfo applies a clinic profile update. Incoming working-hour
	// rules are merged into the existing set; rules are never deleted
	// individually.
	UpdateClinicInfo(ctx context.Context, doctorID string, update models.ClinicInfoUpdate) (*models.Doctor, error)
}

// DefaultDoctorService is the production implementation.
type DefaultDoctorService struct {
	Repo doctorRepo.DoctorRepository
}

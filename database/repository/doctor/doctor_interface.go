package doctorRepo

import (
	"context"

	"medibook/models"
)

// DoctorRepository defines data access for doctor profiles.
type DoctorRepository interface {
	// GetByID retrieves a doctor by its unique ID. Returns ErrDoctorNotFound
	// if no document matches.
	GetByID(ctx context.Context, doctorID string) (*models.Doctor, error)
	// GetByIDs retrieves multiple doctors in a single query, for batch
	// population of appointment listings.
	GetByIDs(ctx context.Context, doctorIDs []string) ([]models.Doctor, error)
	// UpdateClinicInfo applies a clinic profile update. The given working-hour
	// rules are the already-merged full set to persist.
	UpdateClinicInfo(ctx context.Context, doctorID string, fields map[string]any) error
}

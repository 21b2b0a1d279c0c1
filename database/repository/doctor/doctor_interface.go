package doctorRepo

import (
	"context"

	"doctorsportal/models"
)

// DoctorRepository defines methods for the doctor roster.
type DoctorRepository interface {
	GetAll(ctx context.Context) ([]models.Doctor, error)
	// Create inserts the doctor without checking for an existing email.
	Create(ctx context.Context, d *models.Doctor) (*models.WriteResult, error)
	// DeleteByEmail removes the first doctor with the given email. A missing
	// doctor is not an error; the result reports zero deletions.
	DeleteByEmail(ctx context.Context, email string) (*models.WriteResult, error)
}

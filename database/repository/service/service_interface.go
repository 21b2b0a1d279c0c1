package serviceRepo

import (
	"context"

	"doctorsportal/models"
)

// ServiceRepository gives read access to the treatment catalog.
type ServiceRepository interface {
	// GetAll returns every service with its configured slots.
	GetAll(ctx context.Context) ([]models.Service, error)
	// GetNames returns every service projected to its id and name.
	GetNames(ctx context.Context) ([]models.ServiceSummary, error)
}

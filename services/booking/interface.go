package booking

import (
	"context"

	"doctorsportal/models"
)

type BookingService interface {
	// CreateBooking stores b unless the patient already booked the same
	// treatment on the same date.
	CreateBooking(ctx context.Context, b *models.Booking) (*models.BookingResult, error)
	// ListForPatient returns the patient's bookings when the caller is that patient.
	ListForPatient(ctx context.Context, patientEmail, callerEmail string) ([]models.Booking, error)
	// GetByID returns the booking or nil when it does not exist.
	GetByID(ctx context.Context, id, callerEmail string) (*models.Booking, error)
}

// UserLookup is the part of the user store used to resolve admin callers.
type UserLookup interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

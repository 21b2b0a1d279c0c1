package bookingRepo

import (
	"context"
	"errors"

	"doctorsportal/models"
)

// ErrDuplicateBooking is returned by Create when the patient already holds a
// booking for the same treatment and date.
var ErrDuplicateBooking = errors.New("booking already exists for treatment, date and patient")

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// FindByDate returns all bookings whose date equals date.
	FindByDate(ctx context.Context, date string) ([]models.Booking, error)
	// FindByPatient returns all bookings for a patient email.
	FindByPatient(ctx context.Context, email string) ([]models.Booking, error)
	// FindExisting returns the booking matching the triple, or nil.
	FindExisting(ctx context.Context, treatment, date, patientEmail string) (*models.Booking, error)
	// GetByID returns the booking with the given hex id, or nil if none.
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// Create inserts a booking and sets its ID.
	Create(ctx context.Context, b *models.Booking) (*models.WriteResult, error)
}

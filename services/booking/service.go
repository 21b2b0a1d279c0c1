package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	bookingRepo "doctorsportal/database/repository/booking"
	"doctorsportal/models"
)

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo  bookingRepo.BookingRepository
	Users UserLookup
	// OwnerOnlyReads restricts GetByID to the booking's patient and admins.
	OwnerOnlyReads bool
}

func (s *DefaultBookingService) CreateBooking(ctx context.Context, b *models.Booking) (*models.BookingResult, error) {
	if err := validateBooking(b); err != nil {
		return nil, err
	}

	existing, err := s.Repo.FindExisting(ctx, b.Treatment, b.Date, b.PatientEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing booking: %w", err)
	}
	if existing != nil {
		return &models.BookingResult{Success: false, Booking: b}, nil
	}

	if _, err := s.Repo.Create(ctx, b); err != nil {
		// Lost a race with a concurrent request for the same triple.
		if errors.Is(err, bookingRepo.ErrDuplicateBooking) {
			return &models.BookingResult{Success: false, Booking: b}, nil
		}
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	return &models.BookingResult{Success: true, Booking: b}, nil
}

func (s *DefaultBookingService) ListForPatient(ctx context.Context, patientEmail, callerEmail string) ([]models.Booking, error) {
	if callerEmail == "" || patientEmail != callerEmail {
		return nil, ErrForbidden
	}
	bookings, err := s.Repo.FindByPatient(ctx, patientEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for %s: %w", patientEmail, err)
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	return bookings, nil
}

func (s *DefaultBookingService) GetByID(ctx context.Context, id, callerEmail string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking %s: %w", id, err)
	}
	if b == nil || !s.OwnerOnlyReads || b.PatientEmail == callerEmail {
		return b, nil
	}

	caller, err := s.Users.GetByEmail(ctx, callerEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve caller %s: %w", callerEmail, err)
	}
	if !caller.IsAdmin() {
		return nil, ErrForbidden
	}
	return b, nil
}

func validateBooking(b *models.Booking) error {
	if b == nil {
		return &ValidationError{Field: "body"}
	}
	switch {
	case strings.TrimSpace(b.Treatment) == "":
		return &ValidationError{Field: "treatment"}
	case strings.TrimSpace(b.Date) == "":
		return &ValidationError{Field: "date"}
	case strings.TrimSpace(b.PatientEmail) == "":
		return &ValidationError{Field: "patientEmail"}
	}
	return nil
}

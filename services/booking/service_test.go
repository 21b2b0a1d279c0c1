package booking

import (
	"context"
	"errors"
	"testing"

	bookingRepo "doctorsportal/database/repository/booking"
	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeBookingRepo enforces the same uniqueness as the booking collection index.
type fakeBookingRepo struct {
	bookings []models.Booking
	// skipFind makes FindExisting miss, simulating a concurrent insert.
	skipFind bool
}

func (f *fakeBookingRepo) FindByDate(ctx context.Context, date string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.Date == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) FindByPatient(ctx context.Context, email string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.PatientEmail == email {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) FindExisting(ctx context.Context, treatment, date, patientEmail string) (*models.Booking, error) {
	if f.skipFind {
		return nil, nil
	}
	for i, b := range f.bookings {
		if b.Treatment == treatment && b.Date == date && b.PatientEmail == patientEmail {
			return &f.bookings[i], nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	for i, b := range f.bookings {
		if b.ID.Hex() == id {
			return &f.bookings[i], nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) Create(ctx context.Context, b *models.Booking) (*models.WriteResult, error) {
	for _, e := range f.bookings {
		if e.Treatment == b.Treatment && e.Date == b.Date && e.PatientEmail == b.PatientEmail {
			return nil, bookingRepo.ErrDuplicateBooking
		}
	}
	b.ID = primitive.NewObjectID()
	f.bookings = append(f.bookings, *b)
	return &models.WriteResult{Acknowledged: true, InsertedID: b.ID}, nil
}

type fakeUsers map[string]*models.User

func (f fakeUsers) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return f[email], nil
}

func newBooking() *models.Booking {
	return &models.Booking{Treatment: "X", Date: "D", PatientEmail: "a@b.com", Slot: "9am"}
}

func TestCreateBookingRejectsDuplicateTriple(t *testing.T) {
	repo := &fakeBookingRepo{}
	svc := &DefaultBookingService{Repo: repo}

	first, err := svc.CreateBooking(context.Background(), newBooking())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !first.Success {
		t.Fatal("expected first booking to succeed")
	}
	created := first.Booking.(*models.Booking)
	if created.ID.IsZero() {
		t.Error("expected created booking to carry its id")
	}

	second, err := svc.CreateBooking(context.Background(), newBooking())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.Success {
		t.Fatal("expected duplicate booking to be refused")
	}
	echoed := second.Booking.(*models.Booking)
	if echoed.Slot != "9am" || echoed.Treatment != "X" {
		t.Errorf("expected posted data to be echoed, got %+v", echoed)
	}
	if len(repo.bookings) != 1 {
		t.Errorf("expected exactly one stored booking, got %d", len(repo.bookings))
	}
}

func TestCreateBookingDifferentFieldSucceeds(t *testing.T) {
	repo := &fakeBookingRepo{}
	svc := &DefaultBookingService{Repo: repo}

	if _, err := svc.CreateBooking(context.Background(), newBooking()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	variants := []*models.Booking{
		{Treatment: "Y", Date: "D", PatientEmail: "a@b.com", Slot: "9am"},
		{Treatment: "X", Date: "E", PatientEmail: "a@b.com", Slot: "9am"},
		{Treatment: "X", Date: "D", PatientEmail: "c@d.com", Slot: "9am"},
	}
	for _, v := range variants {
		res, err := svc.CreateBooking(context.Background(), v)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Success {
			t.Errorf("expected %+v to be accepted", v)
		}
	}
	if len(repo.bookings) != 4 {
		t.Errorf("expected 4 bookings, got %d", len(repo.bookings))
	}
}

func TestCreateBookingRaceMapsToAlreadyBooked(t *testing.T) {
	repo := &fakeBookingRepo{}
	svc := &DefaultBookingService{Repo: repo}
	if _, err := svc.CreateBooking(context.Background(), newBooking()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	repo.skipFind = true
	res, err := svc.CreateBooking(context.Background(), newBooking())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Success {
		t.Fatal("expected duplicate key to map to an unsuccessful booking")
	}
}

func TestCreateBookingValidation(t *testing.T) {
	svc := &DefaultBookingService{Repo: &fakeBookingRepo{}}

	_, err := svc.CreateBooking(context.Background(), &models.Booking{Treatment: "X", Date: "D"})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Field != "patientEmail" {
		t.Errorf("expected patientEmail, got %s", verr.Field)
	}
}

func TestListForPatientRequiresMatchingCaller(t *testing.T) {
	repo := &fakeBookingRepo{}
	svc := &DefaultBookingService{Repo: repo}
	if _, err := svc.CreateBooking(context.Background(), newBooking()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := svc.ListForPatient(context.Background(), "a@b.com", "a@b.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("expected 1 booking, got %d", len(got))
	}

	got, err = svc.ListForPatient(context.Background(), "a@b.com", "mallory@x.com")
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if got != nil {
		t.Errorf("expected no data on forbidden, got %+v", got)
	}

	if _, err := svc.ListForPatient(context.Background(), "", ""); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for empty caller, got %v", err)
	}
}

func TestListForPatientEmpty(t *testing.T) {
	svc := &DefaultBookingService{Repo: &fakeBookingRepo{}}

	got, err := svc.ListForPatient(context.Background(), "a@b.com", "a@b.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", got)
	}
}

func TestGetByIDPermissiveByDefault(t *testing.T) {
	repo := &fakeBookingRepo{}
	svc := &DefaultBookingService{Repo: repo}
	res, _ := svc.CreateBooking(context.Background(), newBooking())
	id := res.Booking.(*models.Booking).ID.Hex()

	b, err := svc.GetByID(context.Background(), id, "someone@else.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b == nil || b.PatientEmail != "a@b.com" {
		t.Errorf("expected booking, got %+v", b)
	}

	missing, err := svc.GetByID(context.Background(), primitive.NewObjectID().Hex(), "a@b.com")
	if err != nil || missing != nil {
		t.Errorf("expected nil, nil for missing booking, got %+v, %v", missing, err)
	}
}

func TestGetByIDOwnerOnly(t *testing.T) {
	repo := &fakeBookingRepo{}
	svc := &DefaultBookingService{
		Repo:           repo,
		OwnerOnlyReads: true,
		Users: fakeUsers{
			"admin@x.com": {Email: "admin@x.com", Role: models.RoleAdmin},
			"user@x.com":  {Email: "user@x.com"},
		},
	}
	res, _ := svc.CreateBooking(context.Background(), newBooking())
	id := res.Booking.(*models.Booking).ID.Hex()

	if _, err := svc.GetByID(context.Background(), id, "a@b.com"); err != nil {
		t.Errorf("owner: unexpected error: %v", err)
	}
	if _, err := svc.GetByID(context.Background(), id, "admin@x.com"); err != nil {
		t.Errorf("admin: unexpected error: %v", err)
	}
	if _, err := svc.GetByID(context.Background(), id, "user@x.com"); !errors.Is(err, ErrForbidden) {
		t.Errorf("other user: expected ErrForbidden, got %v", err)
	}
	if _, err := svc.GetByID(context.Background(), id, "ghost@x.com"); !errors.Is(err, ErrForbidden) {
		t.Errorf("unknown user: expected ErrForbidden, got %v", err)
	}
}

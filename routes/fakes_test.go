package routes

import (
	"context"
	"sync"

	bookingRepo "doctorsportal/database/repository/booking"
	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type memServices struct {
	services []models.Service
}

func (m *memServices) GetAll(ctx context.Context) ([]models.Service, error) {
	out := make([]models.Service, len(m.services))
	copy(out, m.services)
	return out, nil
}

func (m *memServices) GetNames(ctx context.Context) ([]models.ServiceSummary, error) {
	out := []models.ServiceSummary{}
	for _, s := range m.services {
		out = append(out, models.ServiceSummary{ID: s.ID, Name: s.Name})
	}
	return out, nil
}

type memBookings struct {
	mu       sync.Mutex
	bookings []models.Booking
}

func (m *memBookings) filter(keep func(models.Booking) bool) []models.Booking {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Booking{}
	for _, b := range m.bookings {
		if keep(b) {
			out = append(out, b)
		}
	}
	return out
}

func (m *memBookings) FindByDate(ctx context.Context, date string) ([]models.Booking, error) {
	return m.filter(func(b models.Booking) bool { return b.Date == date }), nil
}

func (m *memBookings) FindByPatient(ctx context.Context, email string) ([]models.Booking, error) {
	return m.filter(func(b models.Booking) bool { return b.PatientEmail == email }), nil
}

func (m *memBookings) FindExisting(ctx context.Context, treatment, date, patientEmail string) (*models.Booking, error) {
	found := m.filter(func(b models.Booking) bool {
		return b.Treatment == treatment && b.Date == date && b.PatientEmail == patientEmail
	})
	if len(found) == 0 {
		return nil, nil
	}
	return &found[0], nil
}

func (m *memBookings) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	found := m.filter(func(b models.Booking) bool { return b.ID.Hex() == id })
	if len(found) == 0 {
		return nil, nil
	}
	return &found[0], nil
}

func (m *memBookings) Create(ctx context.Context, b *models.Booking) (*models.WriteResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.bookings {
		if e.Treatment == b.Treatment && e.Date == b.Date && e.PatientEmail == b.PatientEmail {
			return nil, bookingRepo.ErrDuplicateBooking
		}
	}
	b.ID = primitive.NewObjectID()
	m.bookings = append(m.bookings, *b)
	return &models.WriteResult{Acknowledged: true, InsertedID: b.ID}, nil
}

type memUsers struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func (m *memUsers) GetAll(ctx context.Context) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.User{}
	for _, u := range m.users {
		out = append(out, *u)
	}
	return out, nil
}

func (m *memUsers) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (m *memUsers) Upsert(ctx context.Context, email string, profile models.UserProfile) (*models.WriteResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[email]
	result := &models.WriteResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}
	if !ok {
		u = &models.User{ID: primitive.NewObjectID(), Email: email}
		m.users[email] = u
		result = &models.WriteResult{Acknowledged: true, UpsertedCount: 1}
	}
	for k, v := range profile.Sanitized() {
		if k == "name" {
			u.Name, _ = v.(string)
			continue
		}
		if u.Extra == nil {
			u.Extra = map[string]any{}
		}
		u.Extra[k] = v
	}
	return result, nil
}

func (m *memUsers) SetRole(ctx context.Context, email string, role models.Role) (*models.WriteResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[email]
	if !ok {
		return &models.WriteResult{Acknowledged: true}, nil
	}
	u.Role = role
	return &models.WriteResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

type memDoctors struct {
	doctors []models.Doctor
}

func (m *memDoctors) GetAll(ctx context.Context) ([]models.Doctor, error) {
	return append([]models.Doctor{}, m.doctors...), nil
}

func (m *memDoctors) Create(ctx context.Context, d *models.Doctor) (*models.WriteResult, error) {
	d.ID = primitive.NewObjectID()
	m.doctors = append(m.doctors, *d)
	return &models.WriteResult{Acknowledged: true, InsertedID: d.ID}, nil
}

func (m *memDoctors) DeleteByEmail(ctx context.Context, email string) (*models.WriteResult, error) {
	for i, d := range m.doctors {
		if d.Email == email {
			m.doctors = append(m.doctors[:i], m.doctors[i+1:]...)
			return &models.WriteResult{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return &models.WriteResult{Acknowledged: true}, nil
}

type stubPayments struct{}

func (stubPayments) CreatePaymentIntent(ctx context.Context, price float64) (string, error) {
	if price <= 0 {
		return "", paymentErrInvalid
	}
	return "secret_123", nil
}

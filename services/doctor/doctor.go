// Package doctor manages the doctor roster. Every operation is admin-only;
// the guard lives in the route table.
package doctor

import (
	"context"
	"fmt"
	"strings"

	doctorRepo "doctorsportal/database/repository/doctor"
	"doctorsportal/models"
)

type DoctorService interface {
	ListDoctors(ctx context.Context) ([]models.Doctor, error)
	AddDoctor(ctx context.Context, d *models.Doctor) (*models.WriteResult, error)
	RemoveDoctor(ctx context.Context, email string) (*models.WriteResult, error)
}

type DefaultDoctorService struct {
	Repo doctorRepo.DoctorRepository
}

func (s *DefaultDoctorService) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	doctors, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	if doctors == nil {
		doctors = []models.Doctor{}
	}
	return doctors, nil
}

// AddDoctor inserts d. Emails are not deduplicated.
func (s *DefaultDoctorService) AddDoctor(ctx context.Context, d *models.Doctor) (*models.WriteResult, error) {
	d.Email = strings.TrimSpace(d.Email)
	result, err := s.Repo.Create(ctx, d)
	if err != nil {
		return nil, fmt.Errorf("failed to add doctor: %w", err)
	}
	return result, nil
}

func (s *DefaultDoctorService) RemoveDoctor(ctx context.Context, email string) (*models.WriteResult, error) {
	result, err := s.Repo.DeleteByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to remove doctor: %w", err)
	}
	return result, nil
}

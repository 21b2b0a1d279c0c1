package user

import (
	"context"
	"fmt"

	"doctorsportal/models"
)

// IsAdmin reports whether the stored user has the admin role. Unknown users
// are not admins.
func (s *DefaultUserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return false, fmt.Errorf("failed to fetch user: %w", err)
	}
	return u.IsAdmin(), nil
}

// MakeAdmin grants the admin role. Granting it twice is harmless.
func (s *DefaultUserService) MakeAdmin(ctx context.Context, email string) (*models.WriteResult, error) {
	result, err := s.Repo.SetRole(ctx, email, models.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("failed to grant admin: %w", err)
	}
	return result, nil
}

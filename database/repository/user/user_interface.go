package userRepo

import (
	"context"

	"doctorsportal/models"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetAll retrieves all users.
	GetAll(ctx context.Context) ([]models.User, error)
	// GetByEmail retrieves a user by email. It returns nil, nil when absent.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// Upsert sets the profile fields on the user with the given email,
	// inserting the user if none exists.
	Upsert(ctx context.Context, email string, profile models.UserProfile) (*models.WriteResult, error)
	// SetRole sets the role of the user with the given email.
	SetRole(ctx context.Context, email string, role models.Role) (*models.WriteResult, error)
}

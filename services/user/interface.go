package user

import (
	"context"

	userRepo "doctorsportal/database/repository/user"
	"doctorsportal/models"
)

type UserService interface {
	// User Management
	ListUsers(ctx context.Context) ([]models.User, error)
	UpsertUser(ctx context.Context, email string, profile models.UserProfile) (*models.UpsertUserResponse, error)

	// Admin / Utility
	IsAdmin(ctx context.Context, email string) (bool, error)
	MakeAdmin(ctx context.Context, email string) (*models.WriteResult, error)
}

// TokenIssuer issues session tokens scoped to an email.
type TokenIssuer interface {
	GenerateToken(email string) (string, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo   userRepo.UserRepository
	Tokens TokenIssuer
}

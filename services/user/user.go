package user

import (
	"context"
	"fmt"
	"strings"

	"doctorsportal/models"
)

// ListUsers returns every user profile.
func (s *DefaultUserService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

// UpsertUser saves the profile for email and starts a new session for it.
func (s *DefaultUserService) UpsertUser(ctx context.Context, email string, profile models.UserProfile) (*models.UpsertUserResponse, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, ErrEmailRequired
	}

	result, err := s.Repo.Upsert(ctx, email, profile)
	if err != nil {
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	token, err := s.Tokens.GenerateToken(email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &models.UpsertUserResponse{Result: result, Token: token}, nil
}

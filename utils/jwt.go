package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrMissingEmail = errors.New("token does not contain a valid 'email' claim")
)

// TokenManager issues and verifies HS256 session tokens carrying an email.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// GenerateToken creates a signed token for email that expires after the
// manager's ttl.
func (m *TokenManager) GenerateToken(email string) (string, error) {
	now := m.now()
	claims := jwt.MapClaims{
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(m.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// ValidateToken parses and validates a token string and returns the token if valid.
func (m *TokenManager) ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
}

// ExtractEmail verifies tokenString and returns its email claim.
func (m *TokenManager) ExtractEmail(tokenString string) (string, error) {
	token, err := m.ValidateToken(tokenString)
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", ErrInvalidToken
	}
	// Tokens without exp never expire under MapClaims.Valid, so require one.
	if _, ok := claims["exp"]; !ok {
		return "", ErrInvalidToken
	}

	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return "", ErrMissingEmail
	}
	return email, nil
}

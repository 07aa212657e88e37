package auth

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Errors
var (
	ErrInvalidToken = errors.New("invalid admin token")
	ErrMissingToken = errors.New("admin token required")
)

// Config holds configuration for the auth service
type Config struct {
	// TokenHash is the bcrypt hash of the admin token. When empty, admin
	// routes are open.
	TokenHash string
}

// Service verifies the admin token guarding catalog mutations
type Service struct {
	tokenHash []byte
}

// New creates a new AuthService
func New(cfg Config) *Service {
	s := &Service{}
	if cfg.TokenHash != "" {
		s.tokenHash = []byte(cfg.TokenHash)
	}
	return s
}

// Enabled reports whether an admin token is configured
func (s *Service) Enabled() bool {
	return s.tokenHash != nil
}

// Verify checks a presented admin token against the configured hash
func (s *Service) Verify(token string) error {
	if !s.Enabled() {
		return nil
	}
	if token == "" {
		return ErrMissingToken
	}
	if err := bcrypt.CompareHashAndPassword(s.tokenHash, []byte(token)); err != nil {
		return ErrInvalidToken
	}
	return nil
}

// HashToken returns the bcrypt hash to configure for a token
func HashToken(token string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(token), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// GenerateToken creates a random admin token
func GenerateToken() (string, error) {
	b := make([]byte, 24)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generating admin token: %w", err)
	}
	return "adm_" + base64.URLEncoding.EncodeToString(b), nil
}

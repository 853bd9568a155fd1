package services

import (
	"errors"
	"fmt"

	"blogd/app/auth"
	"blogd/app/models"
	"blogd/app/repositories"
)

// ErrInvalidCredentials is returned for both unknown usernames and wrong
// passwords; login failures never reveal which half was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService handles signup and login
type AuthService struct {
	users  repositories.UserRepository
	signer *auth.Signer
}

// NewAuthService creates a new AuthService
func NewAuthService(users repositories.UserRepository, signer *auth.Signer) *AuthService {
	return &AuthService{users: users, signer: signer}
}

// Register hashes the password and stores the new account. A taken username
// fails with repositories.ErrDuplicateUser.
func (s *AuthService) Register(username, password string) error {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{Username: username, PasswordHash: hash}
	if err := user.Validate(); err != nil {
		return fmt.Errorf("invalid user: %v", err)
	}

	return s.users.Create(user)
}

// Login verifies the credentials and issues a bearer token for the account.
func (s *AuthService) Login(username, password string) (string, error) {
	user, err := s.users.GetByUsername(username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if !auth.VerifyPassword(user.PasswordHash, password) {
		return "", ErrInvalidCredentials
	}

	return s.signer.Issue(user.Username)
}

package services

import (
	"errors"
	"fmt"

	"flapjack/app/models"
	"flapjack/app/repositories"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials is returned by Login when the password does
	// not match the stored hash.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrForbidden is returned when the caller is not allowed to perform
	// the operation.
	ErrForbidden = errors.New("forbidden")
)

// AuthService handles registration and login.
type AuthService struct {
	users repositories.UserRepository
}

// NewAuthService creates a new AuthService
func NewAuthService(users repositories.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Register creates a new account with a bcrypt-hashed password. A taken
// email returns repositories.ErrDuplicate, whether caught by the lookup here
// or by the UNIQUE constraint when a concurrent registration wins the race.
func (s *AuthService) Register(username, email, password string) (*models.User, error) {
	existing, err := s.users.GetByEmail(email)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("checking for existing user: %w", err)
	}
	if existing != nil {
		return nil, repositories.ErrDuplicate
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}
	user.BeforeCreate()
	if err := user.Validate(); err != nil {
		return nil, fmt.Errorf("invalid user: %w", err)
	}

	if err := s.users.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials. An unknown email returns
// repositories.ErrNotFound; a wrong password returns ErrInvalidCredentials.
func (s *AuthService) Login(email, password string) (*models.User, error) {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

package service

import (
	"errors"

	"gorm.io/gorm"

	"bloghub/internal/web/models"
	"bloghub/internal/web/repository"
)

var (
	ErrEmailInUse         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type AuthService interface {
	Register(name, email, password string) (*models.User, error)
	Login(email, password string) (*models.User, error)
}

type authService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

// Register creates a new account. Email uniqueness is enforced by a
// pre-check against the store, not by catching a constraint violation.
func (s *authService) Register(name, email, password string) (*models.User, error) {
	if _, err := s.userRepo.FindByEmail(email); err == nil {
		return nil, ErrEmailInUse
	}

	// Passwords are stored exactly as given and compared by equality.
	user := &models.User{
		Name:     name,
		Email:    email,
		Password: password,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login authenticates by email and password match.
func (s *authService) Login(email, password string) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if user.Password != password {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

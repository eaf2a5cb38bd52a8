package service

import (
	"errors"

	"gorm.io/gorm"

	"bloghub/internal/web/models"
	"bloghub/internal/web/repository"
)

var ErrUserNotFound = errors.New("user not found")

type UserService interface {
	GetUser(userID int64) (*models.User, error)
	ListUsers() ([]models.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetUser(userID int64) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) ListUsers() ([]models.User, error) {
	return s.userRepo.FindAll()
}

package service

import (
	"github.com/stretchr/testify/mock"

	"bloghub/internal/web/models"
)

// Repository doubles shared by the service tests.

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(id int64) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindAll() ([]models.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

type MockBlogRepository struct {
	mock.Mock
}

func (m *MockBlogRepository) Create(post *models.Blog) error {
	args := m.Called(post)
	return args.Error(0)
}

func (m *MockBlogRepository) Save(post *models.Blog) error {
	args := m.Called(post)
	return args.Error(0)
}

func (m *MockBlogRepository) DeleteByID(postID int64) error {
	args := m.Called(postID)
	return args.Error(0)
}

func (m *MockBlogRepository) FindByID(postID int64) (*models.Blog, error) {
	args := m.Called(postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Blog), args.Error(1)
}

func (m *MockBlogRepository) FindAll() ([]models.Blog, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Blog), args.Error(1)
}

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(comment *models.Comment) error {
	args := m.Called(comment)
	return args.Error(0)
}

func (m *MockCommentRepository) FindByPost(postID int64) ([]models.Comment, error) {
	args := m.Called(postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

type MockLikeRepository struct {
	mock.Mock
}

func (m *MockLikeRepository) Create(like *models.Like) error {
	args := m.Called(like)
	return args.Error(0)
}

func (m *MockLikeRepository) Delete(likeID int64) error {
	args := m.Called(likeID)
	return args.Error(0)
}

func (m *MockLikeRepository) FindByUserAndPost(userID, postID int64) (*models.Like, error) {
	args := m.Called(userID, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Like), args.Error(1)
}

func (m *MockLikeRepository) CountByPost(postID int64) (int64, error) {
	args := m.Called(postID)
	return args.Get(0).(int64), args.Error(1)
}

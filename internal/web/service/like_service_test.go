package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"bloghub/internal/web/models"
)

func TestToggleLike_CreatesWhenAbsent(t *testing.T) {
	likeRepo := new(MockLikeRepository)
	blogRepo := new(MockBlogRepository)
	svc := NewLikeService(likeRepo, blogRepo)

	blogRepo.On("FindByID", int64(3)).Return(&models.Blog{ID: 3}, nil)
	likeRepo.On("FindByUserAndPost", int64(1), int64(3)).Return(nil, gorm.ErrRecordNotFound)
	likeRepo.On("Create", mock.AnythingOfType("*models.Like")).Return(nil)

	liked, err := svc.ToggleLike(1, 3)
	require.NoError(t, err)
	assert.True(t, liked)

	likeRepo.AssertExpectations(t)
}

func TestToggleLike_DeletesWhenPresent(t *testing.T) {
	likeRepo := new(MockLikeRepository)
	blogRepo := new(MockBlogRepository)
	svc := NewLikeService(likeRepo, blogRepo)

	blogRepo.On("FindByID", int64(3)).Return(&models.Blog{ID: 3}, nil)
	likeRepo.On("FindByUserAndPost", int64(1), int64(3)).Return(&models.Like{ID: 9, UserID: 1, PostID: 3}, nil)
	likeRepo.On("Delete", int64(9)).Return(nil)

	liked, err := svc.ToggleLike(1, 3)
	require.NoError(t, err)
	assert.False(t, liked)

	likeRepo.AssertNotCalled(t, "Create", mock.Anything)
}

// A like/unlike pair by the same user must return the state to zero.
func TestToggleLike_TwiceIsIdempotentPair(t *testing.T) {
	likeRepo := new(MockLikeRepository)
	blogRepo := new(MockBlogRepository)
	svc := NewLikeService(likeRepo, blogRepo)

	blogRepo.On("FindByID", int64(3)).Return(&models.Blog{ID: 3}, nil)

	likeRepo.On("FindByUserAndPost", int64(1), int64(3)).Return(nil, gorm.ErrRecordNotFound).Once()
	likeRepo.On("Create", mock.AnythingOfType("*models.Like")).Run(func(args mock.Arguments) {
		args.Get(0).(*models.Like).ID = 9
	}).Return(nil).Once()

	liked, err := svc.ToggleLike(1, 3)
	require.NoError(t, err)
	assert.True(t, liked)

	likeRepo.On("FindByUserAndPost", int64(1), int64(3)).Return(&models.Like{ID: 9, UserID: 1, PostID: 3}, nil).Once()
	likeRepo.On("Delete", int64(9)).Return(nil).Once()

	liked, err = svc.ToggleLike(1, 3)
	require.NoError(t, err)
	assert.False(t, liked)

	likeRepo.AssertExpectations(t)
}

func TestToggleLike_MissingPostMutatesNothing(t *testing.T) {
	likeRepo := new(MockLikeRepository)
	blogRepo := new(MockBlogRepository)
	svc := NewLikeService(likeRepo, blogRepo)

	blogRepo.On("FindByID", int64(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.ToggleLike(1, 404)
	assert.ErrorIs(t, err, ErrPostNotFound)

	likeRepo.AssertNotCalled(t, "Create", mock.Anything)
	likeRepo.AssertNotCalled(t, "Delete", mock.Anything)
}

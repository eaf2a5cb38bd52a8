package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"bloghub/internal/web/models"
)

func newBlogService(t *testing.T) (BlogService, *MockBlogRepository, *MockCommentRepository, *MockLikeRepository) {
	t.Helper()
	blogRepo := new(MockBlogRepository)
	commentRepo := new(MockCommentRepository)
	likeRepo := new(MockLikeRepository)
	return NewBlogService(blogRepo, commentRepo, likeRepo), blogRepo, commentRepo, likeRepo
}

func TestListPosts_ReturnsStoreOrderWithCounts(t *testing.T) {
	svc, blogRepo, _, likeRepo := newBlogService(t)

	blogRepo.On("FindAll").Return([]models.Blog{
		{ID: 1, Title: "first"},
		{ID: 2, Title: "second"},
	}, nil)
	likeRepo.On("CountByPost", int64(1)).Return(int64(2), nil)
	likeRepo.On("CountByPost", int64(2)).Return(int64(0), nil)

	views, err := svc.ListPosts()
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "first", views[0].Post.Title)
	assert.Equal(t, int64(2), views[0].LikeCount)
	assert.Equal(t, int64(0), views[1].LikeCount)
}

func TestGetPost_WithComments(t *testing.T) {
	svc, blogRepo, commentRepo, likeRepo := newBlogService(t)

	blogRepo.On("FindByID", int64(1)).Return(&models.Blog{ID: 1, Title: "first"}, nil)
	commentRepo.On("FindByPost", int64(1)).Return([]models.Comment{{ID: 4, Text: "hi", PostID: 1}}, nil)
	likeRepo.On("CountByPost", int64(1)).Return(int64(1), nil)

	view, err := svc.GetPost(1)
	require.NoError(t, err)
	assert.Equal(t, "first", view.Post.Title)
	require.Len(t, view.Comments, 1)
	assert.Equal(t, "hi", view.Comments[0].Text)
}

func TestGetPost_NotFound(t *testing.T) {
	svc, blogRepo, _, _ := newBlogService(t)

	blogRepo.On("FindByID", int64(404)).Return(nil, gorm.ErrRecordNotFound)

	view, err := svc.GetPost(404)
	assert.ErrorIs(t, err, ErrPostNotFound)
	assert.Nil(t, view)
}

func TestUpdatePost_MutatesInPlace(t *testing.T) {
	svc, blogRepo, _, _ := newBlogService(t)

	stored := &models.Blog{ID: 1, Title: "old", Content: "old body", UserID: 9}
	blogRepo.On("FindByID", int64(1)).Return(stored, nil)
	blogRepo.On("Save", stored).Return(nil)

	post, err := svc.UpdatePost(1, "new", "new body")
	require.NoError(t, err)
	assert.Equal(t, "new", post.Title)
	assert.Equal(t, "new body", post.Content)
	// ownership is untouched by an edit
	assert.Equal(t, int64(9), post.UserID)
}

func TestUpdatePost_NotFound(t *testing.T) {
	svc, blogRepo, _, _ := newBlogService(t)

	blogRepo.On("FindByID", int64(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.UpdatePost(404, "t", "c")
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestDeletePost_MissingIDIsNoOp(t *testing.T) {
	svc, blogRepo, _, _ := newBlogService(t)

	// the repository delete reports success on zero rows affected
	blogRepo.On("DeleteByID", int64(404)).Return(nil)

	assert.NoError(t, svc.DeletePost(404))
}

package service

import (
	"errors"

	"gorm.io/gorm"

	"bloghub/internal/web/models"
	"bloghub/internal/web/repository"
)

var ErrPostNotFound = errors.New("post not found")

// PostView is a post together with the counters the list and detail
// views render next to it.
type PostView struct {
	Post      models.Blog
	LikeCount int64
	Comments  []models.Comment
}

type BlogService interface {
	ListPosts() ([]PostView, error)
	GetPost(postID int64) (*PostView, error)
	CreatePost(userID int64, title, content, imageURL string) (*models.Blog, error)
	UpdatePost(postID int64, title, content string) (*models.Blog, error)
	DeletePost(postID int64) error
}

type blogService struct {
	blogRepo    repository.BlogRepository
	commentRepo repository.CommentRepository
	likeRepo    repository.LikeRepository
}

func NewBlogService(
	blogRepo repository.BlogRepository,
	commentRepo repository.CommentRepository,
	likeRepo repository.LikeRepository,
) BlogService {
	return &blogService{
		blogRepo:    blogRepo,
		commentRepo: commentRepo,
		likeRepo:    likeRepo,
	}
}

// ListPosts returns every post in store order with its like count.
func (s *blogService) ListPosts() ([]PostView, error) {
	posts, err := s.blogRepo.FindAll()
	if err != nil {
		return nil, err
	}

	views := make([]PostView, 0, len(posts))
	for _, post := range posts {
		count, err := s.likeRepo.CountByPost(post.ID)
		if err != nil {
			return nil, err
		}
		views = append(views, PostView{Post: post, LikeCount: count})
	}
	return views, nil
}

// GetPost returns a single post with its comments for the detail view.
func (s *blogService) GetPost(postID int64) (*PostView, error) {
	post, err := s.blogRepo.FindByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	comments, err := s.commentRepo.FindByPost(postID)
	if err != nil {
		return nil, err
	}

	count, err := s.likeRepo.CountByPost(postID)
	if err != nil {
		return nil, err
	}

	return &PostView{Post: *post, LikeCount: count, Comments: comments}, nil
}

// CreatePost persists a new post owned by the given user. imageURL may be
// empty when no (acceptable) image was uploaded.
func (s *blogService) CreatePost(userID int64, title, content, imageURL string) (*models.Blog, error) {
	post := &models.Blog{
		Title:    title,
		Content:  content,
		UserID:   userID,
		ImageURL: imageURL,
	}

	if err := s.blogRepo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

// UpdatePost mutates title and content of a fetched post in place and
// commits. There is no ownership check: any visitor may edit any post.
func (s *blogService) UpdatePost(postID int64, title, content string) (*models.Blog, error) {
	post, err := s.blogRepo.FindByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	post.Title = title
	post.Content = content
	if err := s.blogRepo.Save(post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost removes a post unconditionally. A missing id is a no-op, not
// an error. The uploaded image file, if any, is left on disk.
func (s *blogService) DeletePost(postID int64) error {
	return s.blogRepo.DeleteByID(postID)
}

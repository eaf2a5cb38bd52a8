package service

import (
	"errors"

	"gorm.io/gorm"

	"bloghub/internal/web/models"
	"bloghub/internal/web/repository"
)

type CommentService interface {
	CreateComment(userID, postID int64, text string) (*models.Comment, error)
}

type commentService struct {
	commentRepo repository.CommentRepository
	blogRepo    repository.BlogRepository
}

func NewCommentService(commentRepo repository.CommentRepository, blogRepo repository.BlogRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		blogRepo:    blogRepo,
	}
}

// CreateComment adds a comment to an existing post. The target post must
// exist; nothing is persisted when it does not.
func (s *commentService) CreateComment(userID, postID int64, text string) (*models.Comment, error) {
	if _, err := s.blogRepo.FindByID(postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	comment := &models.Comment{
		Text:   text,
		UserID: userID,
		PostID: postID,
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

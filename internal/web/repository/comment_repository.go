package repository

import (
	"bloghub/internal/web/models"

	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(comment *models.Comment) error
	FindByPost(postID int64) ([]models.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// Create a new comment
func (r *commentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// FindByPost retrieves all comments on a post with commenters preloaded
func (r *commentRepository) FindByPost(postID int64) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("post_id = ?", postID).
		Preload("User").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

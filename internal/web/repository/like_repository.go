package repository

import (
	"bloghub/internal/web/models"

	"gorm.io/gorm"
)

type LikeRepository interface {
	Create(like *models.Like) error
	Delete(likeID int64) error
	FindByUserAndPost(userID, postID int64) (*models.Like, error)
	CountByPost(postID int64) (int64, error)
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Create(like *models.Like) error {
	return r.db.Create(like).Error
}

func (r *likeRepository) Delete(likeID int64) error {
	return r.db.Where("id = ?", likeID).Delete(&models.Like{}).Error
}

// FindByUserAndPost retrieves the like a user placed on a post, if any
func (r *likeRepository) FindByUserAndPost(userID, postID int64) (*models.Like, error) {
	var like models.Like
	err := r.db.Where("user_id = ? AND post_id = ?", userID, postID).
		First(&like).Error
	if err != nil {
		return nil, err
	}
	return &like, nil
}

func (r *likeRepository) CountByPost(postID int64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Like{}).Where("post_id = ?", postID).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

package repository

import (
	"bloghub/internal/web/models"

	"gorm.io/gorm"
)

type BlogRepository interface {
	Create(post *models.Blog) error
	Save(post *models.Blog) error
	DeleteByID(postID int64) error
	FindByID(postID int64) (*models.Blog, error)
	FindAll() ([]models.Blog, error)
}

type blogRepository struct {
	db *gorm.DB
}

func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepository{db: db}
}

// Create a new post
func (r *blogRepository) Create(post *models.Blog) error {
	return r.db.Create(post).Error
}

// Save commits in-place mutations of a previously fetched post
func (r *blogRepository) Save(post *models.Blog) error {
	return r.db.Save(post).Error
}

// DeleteByID removes a post. Deleting an id that does not exist is a no-op.
func (r *blogRepository) DeleteByID(postID int64) error {
	return r.db.Where("id = ?", postID).Delete(&models.Blog{}).Error
}

// FindByID retrieves a post by its ID with the author preloaded
func (r *blogRepository) FindByID(postID int64) (*models.Blog, error) {
	var post models.Blog
	err := r.db.Where("id = ?", postID).
		Preload("User").
		First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// FindAll retrieves every post in store order, no filter, no pagination
func (r *blogRepository) FindAll() ([]models.Blog, error) {
	var posts []models.Blog
	if err := r.db.Preload("User").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

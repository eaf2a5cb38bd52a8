package service

import (
	"errors"

	"gorm.io/gorm"

	"bloghub/internal/web/models"
	"bloghub/internal/web/repository"
)

type LikeService interface {
	ToggleLike(userID, postID int64) (liked bool, err error)
}

type likeService struct {
	likeRepo repository.LikeRepository
	blogRepo repository.BlogRepository
}

func NewLikeService(likeRepo repository.LikeRepository, blogRepo repository.BlogRepository) LikeService {
	return &likeService{
		likeRepo: likeRepo,
		blogRepo: blogRepo,
	}
}

// ToggleLike creates a like for (user, post) when none exists and removes
// the existing one otherwise. The returned bool is true when the post is
// liked after the call. A missing post mutates nothing.
func (s *likeService) ToggleLike(userID, postID int64) (bool, error) {
	if _, err := s.blogRepo.FindByID(postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrPostNotFound
		}
		return false, err
	}

	existing, err := s.likeRepo.FindByUserAndPost(userID, postID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	if existing != nil {
		// unlike
		if err := s.likeRepo.Delete(existing.ID); err != nil {
			return false, err
		}
		return false, nil
	}

	like := &models.Like{UserID: userID, PostID: postID}
	if err := s.likeRepo.Create(like); err != nil {
		return false, err
	}
	return true, nil
}

package models

import "time"

// Like records that a user liked a post. At most one row per (user, post)
// pair exists, enforced by the toggle logic rather than a unique index.
type Like struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    int64     `json:"user_id" gorm:"not null;index"`
	PostID    int64     `json:"post_id" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Associations
	User User `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Post Blog `json:"post,omitempty" gorm:"foreignKey:PostID"`
}

func (Like) TableName() string {
	return "likes"
}

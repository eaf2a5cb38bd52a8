package models

import "time"

type Comment struct {
	ID   int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Text string `json:"text" gorm:"not null;type:text"`
	// ImageURL is part of the schema but no handler ever sets it.
	ImageURL  string    `json:"image_url" gorm:"not null"`
	UserID    int64     `json:"user_id" gorm:"not null;index"`
	PostID    int64     `json:"post_id" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	User User `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Post Blog `json:"post,omitempty" gorm:"foreignKey:PostID"`
}

func (Comment) TableName() string {
	return "comments"
}

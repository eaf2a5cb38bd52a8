package models

import "time"

type Blog struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Title     string    `json:"title" gorm:"not null"`
	Content   string    `json:"content" gorm:"not null;type:text"`
	UserID    int64     `json:"user_id" gorm:"not null;index"`
	ImageURL  string    `json:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	User User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

func (Blog) TableName() string {
	return "blogs"
}

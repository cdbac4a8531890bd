package models

import "gorm.io/gorm"

type Post struct {
	gorm.Model
	AuthorID      uint `gorm:"index;not null"`
	AuthorName    string
	AuthorImage   string
	TopTitle      string
	Content       string
	CoverImageURL string
	CommentCount  int `gorm:"default:0"`
	LikeCount     int `gorm:"default:0"`
	Comments      []Comment
}

type Comment struct {
	gorm.Model
	PostID    uint `gorm:"index;not null"`
	UserID    uint
	UserName  string
	UserImage string
	Content   string
	LikeCount int `gorm:"default:0"`
}

// Like is one row per (user, target); toggling deletes or recreates it.
type Like struct {
	gorm.Model
	UserID     uint   `gorm:"uniqueIndex:idx_likes_user_target;not null"`
	TargetType string `gorm:"uniqueIndex:idx_likes_user_target;not null"` // "post" or "comment"
	TargetID   uint   `gorm:"uniqueIndex:idx_likes_user_target;not null"`
}

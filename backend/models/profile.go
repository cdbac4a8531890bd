package models

import "gorm.io/gorm"

type Profile struct {
	gorm.Model
	UserID         uint   `gorm:"uniqueIndex;not null"`
	Username       string `gorm:"uniqueIndex;not null"`
	Bio            string
	Gender         string
	Country        string
	AvatarURL      string
	Category       string
	GithubUsername string
}

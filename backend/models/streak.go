package models

import "time"

// StreakRecord tracks a user's daily check-in streak. One record per user,
// created lazily on the first check-in.
type StreakRecord struct {
	ID            string `gorm:"primaryKey"`
	UserID        uint   `gorm:"uniqueIndex;not null"`
	LastCheckIn   time.Time
	StreakCount   int `gorm:"default:1"`
	LongestStreak int `gorm:"default:1"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// StreakSummary is what check-in returns to callers and what the client renders.
type StreakSummary struct {
	Streak  int `json:"streak"`
	Longest int `json:"longest"`
}

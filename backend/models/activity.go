package models

import (
	"time"

	"gorm.io/gorm"
)

type Activity struct {
	gorm.Model
	SourceID     string `gorm:"uniqueIndex"` // catalog id, stable across reseeds
	Type         string // Mental, Physical, Calm...
	Title        string
	Description  string
	Tags         string // comma-separated
	Duration     string
	Difficulty   string // Easy, Intermediate, Advanced
	ActivityType string // Practice, Reading
	ExerciseName string
	TotalSteps   int
	Steps        string // JSON array of step texts
	ImageURL     string
	Redirect     string
}

type Category struct {
	gorm.Model
	SourceID    string `gorm:"uniqueIndex"`
	Type        string
	IssueText   string
	Description string
	IconBgColor string
}

type ActivityCompletion struct {
	gorm.Model
	UserID      uint `gorm:"index;not null"`
	ActivityID  uint `gorm:"index;not null"`
	CompletedAt time.Time
}

package storage

import (
	"wellspring/backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedCatalog loads the built-in training and mood-category content. Rows are
// keyed by SourceID, so reseeding on every startup is safe and picks up
// catalog edits without duplicating entries.
func SeedCatalog(db *gorm.DB) error {
	activities := []models.Activity{
		{
			SourceID:     "1012",
			Type:         "Mental",
			Title:        "Practice Pomodoro (In-App)",
			Description:  "Use the built-in Pomodoro timer to build laser focus and avoid burnout.",
			Tags:         "Habit,Deep Work,Time Management,Mental Clarity",
			Duration:     "25 min + 5 min",
			Difficulty:   "Easy",
			ActivityType: "Practice",
			ExerciseName: "Pomodoro Habituation",
			TotalSteps:   4,
			Steps:        `["Tap Start to begin a 25-minute focus sprint.","Avoid all distractions. Stay with one task.","When the timer ends, take a 5-minute break to reset.","After 4 rounds, take a 15-20 min long break."]`,
			ImageURL:     "https://res.cloudinary.com/dhvkjanwa/image/upload/v1746099966/zen_coding_balance.png",
			Redirect:     "/Trainings/Pomodoro",
		},
		{
			SourceID:     "2001",
			Type:         "Mental",
			Title:        "Master the Pomodoro Technique",
			Description:  "Harness focused work sessions and strategic breaks to maximize productivity while minimizing burnout.",
			Tags:         "Focus,Productivity,Time Management,Cognitive Performance",
			Duration:     "25 min + 5 min",
			Difficulty:   "Intermediate",
			ActivityType: "Practice",
			ExerciseName: "Advanced Pomodoro Cycle",
			TotalSteps:   6,
			Steps:        `["Define your task clearly.","Eliminate distractions before starting.","Work with intense focus for 25 minutes.","When interrupted, note the distraction and return to focus.","Take a genuine 5-minute break.","After 4 cycles, take a 20-minute restorative break."]`,
			ImageURL:     "https://res.cloudinary.com/dhvkjanwa/image/upload/v1746097187/meditative_tech_developer.png",
			Redirect:     "/Trainings/Readingscreen",
		},
		{
			SourceID:     "3001",
			Type:         "Mental",
			Title:        "Deep Focus Sprint Protocol",
			Description:  "Ride a full ultradian rhythm with one uninterrupted 90-minute deep work session.",
			Tags:         "Deep Work,Flow,Attention",
			Duration:     "90 min focus",
			Difficulty:   "Advanced",
			ActivityType: "Practice",
			ExerciseName: "Ultradian Rhythm Work",
			TotalSteps:   4,
			Steps:        `["Pick a single demanding task.","Silence every notification channel.","Work the full 90 minutes without switching.","Close with a 20-minute full disengagement."]`,
			Redirect:     "/Trainings/trainingscreen",
		},
		{
			SourceID:     "3002",
			Type:         "Posture",
			Title:        "Ergonomic Alignment Reset",
			Description:  "A seven-minute stretch sequence that undoes hours of desk posture.",
			Tags:         "Posture,Stretch,Recovery",
			Duration:     "7 min",
			Difficulty:   "Intermediate",
			ActivityType: "Stretch",
			ExerciseName: "Structural Integration",
			TotalSteps:   5,
			Steps:        `["Stand and roll shoulders back ten times.","Open the chest with a doorway stretch.","Release the neck with slow side tilts.","Hinge at the hips and hang for thirty seconds.","Finish with two minutes of tall, relaxed sitting."]`,
			Redirect:     "/Trainings/trainingscreen",
		},
		{
			SourceID:     "3003",
			Type:         "Eyes",
			Title:        "Complete Digital Eye Strain Protocol",
			Description:  "Hourly micro-breaks that keep screen fatigue from accumulating.",
			Tags:         "Eyes,Habit,Recovery",
			Duration:     "3 min (every hour)",
			Difficulty:   "Easy",
			ActivityType: "Habit",
			ExerciseName: "Visual Ergonomics",
			TotalSteps:   3,
			Steps:        `["Every 20 minutes, look 20 feet away for 20 seconds.","Blink deliberately ten times to rewet the eyes.","Palm your eyes for one minute each hour."]`,
			Redirect:     "/Trainings/trainingscreen",
		},
		{
			SourceID:     "3004",
			Type:         "Learning",
			Title:        "The Feynman Mastery Method",
			Description:  "Compress what you just learned by explaining it in plain words.",
			Tags:         "Learning,Reflection,Memory",
			Duration:     "15-30 min",
			Difficulty:   "Advanced",
			ActivityType: "Read",
			ExerciseName: "Knowledge Compression",
			TotalSteps:   4,
			Steps:        `["Pick the concept you studied today.","Explain it aloud as if to a beginner.","Find the gap where the explanation stalls.","Return to the source and close that gap."]`,
			Redirect:     "/Trainings/Readingscreen",
		},
		{
			SourceID:     "3005",
			Type:         "Motivation",
			Title:        "Neuroplastic Achievement Tracking",
			Description:  "A short daily ritual of logging wins to keep motivation compounding.",
			Tags:         "Motivation,Habit,Reflection",
			Duration:     "7 min daily",
			Difficulty:   "Intermediate",
			ActivityType: "Reflection",
			ExerciseName: "Motivation Architecture",
			TotalSteps:   3,
			Steps:        `["Write down three things you moved forward today.","Name the one obstacle you worked around.","Set tomorrow's single most important task."]`,
			Redirect:     "/Trainings/Readingscreen",
		},
		{
			SourceID:     "3006",
			Type:         "Physical",
			Title:        "Bioenergetic Desk Reboot",
			Description:  "Nine minutes of movement that resets energy between work blocks.",
			Tags:         "Physical,Stretch,Energy",
			Duration:     "9 min",
			Difficulty:   "Easy",
			ActivityType: "Stretch",
			ExerciseName: "Non-Exercise Activity",
			TotalSteps:   4,
			Steps:        `["Twenty bodyweight squats by the desk.","One minute of brisk marching in place.","Shake out arms and wrists for thirty seconds.","Two minutes of slow nasal breathing to settle."]`,
			Redirect:     "/Trainings/trainingscreen",
		},
	}

	categories := []models.Category{
		{SourceID: "901", Type: "Anger", IssueText: "Feeling Angry?", Description: "Learn how to use anger constructively.", IconBgColor: "#FF4A4A"},
		{SourceID: "903", Type: "Blame", IssueText: "Caught in Blame?", Description: "Shift blame into personal power.", IconBgColor: "#FF7F50"},
		{SourceID: "904", Type: "Sorrow", IssueText: "Feeling Low?", Description: "Explore how sorrow leads to healing.", IconBgColor: "#6789FF"},
		{SourceID: "905", Type: "Confusion", IssueText: "Mentally Foggy?", Description: "Turn confusion into clarity.", IconBgColor: "#00C6AE"},
		{SourceID: "906", Type: "Happiness", IssueText: "Want More Joy?", Description: "Build joy through gratitude and purpose.", IconBgColor: "#FFB700"},
	}

	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "source_id"}},
		UpdateAll: true,
	}).Create(&activities).Error; err != nil {
		return err
	}

	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "source_id"}},
		UpdateAll: true,
	}).Create(&categories).Error
}

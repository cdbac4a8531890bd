package controllers

import (
	"errors"
	"time"

	"wellspring/backend/config"
	"wellspring/backend/models"
	"wellspring/backend/services"
	"wellspring/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ProgressController struct {
	DB      *gorm.DB
	Cfg     *config.Config
	Streaks *services.StreakService
}

func NewProgressController(db *gorm.DB, cfg *config.Config, streaks *services.StreakService) *ProgressController {
	return &ProgressController{DB: db, Cfg: cfg, Streaks: streaks}
}

// ProgressOverview summarizes a user's activity for the profile screen
type ProgressOverview struct {
	Streak            models.StreakSummary `json:"streak"`
	TotalCompletions  int64                `json:"totalCompletions"`
	RecentCompletions int64                `json:"recentCompletions"` // last 30 days
}

// GetOverview godoc
// @Summary Get progress overview
// @Description Returns streak and training-completion totals for the authenticated user
// @Tags progress
// @Produce json
// @Success 200 {object} ProgressOverview
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /progress/overview [get]
func (pc *ProgressController) GetOverview(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, pc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	// A user with no check-ins yet sees zeros, not an error
	streak, err := pc.Streaks.Current(c.Context(), userID)
	if err != nil && !errors.Is(err, services.ErrNotFound) {
		return utils.ServiceUnavailable(c, "Streak unavailable")
	}

	var total int64
	pc.DB.Model(&models.ActivityCompletion{}).
		Where("user_id = ?", userID).
		Count(&total)

	var recent int64
	pc.DB.Model(&models.ActivityCompletion{}).
		Where("user_id = ? AND completed_at > ?", userID, time.Now().AddDate(0, 0, -30)).
		Count(&recent)

	return utils.Success(c, fiber.StatusOK, ProgressOverview{
		Streak:            streak,
		TotalCompletions:  total,
		RecentCompletions: recent,
	})
}

package controllers

import (
	"errors"
	"time"

	"wellspring/backend/config"
	"wellspring/backend/services"
	"wellspring/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type StreakController struct {
	Cfg     *config.Config
	Streaks *services.StreakService
}

func NewStreakController(cfg *config.Config, streaks *services.StreakService) *StreakController {
	return &StreakController{Cfg: cfg, Streaks: streaks}
}

// CheckIn godoc
// @Summary Record today's check-in
// @Description Idempotently records a daily check-in and returns the streak
// @Tags streaks
// @Produce json
// @Success 200 {object} models.StreakSummary
// @Failure 401 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /streaks/checkin [post]
func (sc *StreakController) CheckIn(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, sc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	summary, err := sc.Streaks.CheckIn(c.Context(), userID, time.Now())
	if err != nil {
		return utils.ServiceUnavailable(c, "Streak unavailable")
	}

	return utils.Success(c, fiber.StatusOK, summary)
}

// GetStreak godoc
// @Summary Get current streak
// @Description Returns the streak without recording a check-in
// @Tags streaks
// @Produce json
// @Success 200 {object} models.StreakSummary
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /streaks [get]
func (sc *StreakController) GetStreak(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, sc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	summary, err := sc.Streaks.Current(c.Context(), userID)
	if errors.Is(err, services.ErrNotFound) {
		return utils.NotFound(c, "No check-ins yet")
	}
	if err != nil {
		return utils.ServiceUnavailable(c, "Streak unavailable")
	}

	return utils.Success(c, fiber.StatusOK, summary)
}

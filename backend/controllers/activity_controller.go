package controllers

import (
	"errors"
	"strconv"
	"time"

	"wellspring/backend/config"
	"wellspring/backend/models"
	"wellspring/backend/services"
	"wellspring/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ActivityController struct {
	DB      *gorm.DB
	Cfg     *config.Config
	Streaks *services.StreakService
}

func NewActivityController(db *gorm.DB, cfg *config.Config, streaks *services.StreakService) *ActivityController {
	return &ActivityController{DB: db, Cfg: cfg, Streaks: streaks}
}

// GetActivities godoc
// @Summary List trainings
// @Description Returns the training catalog, optionally filtered by type
// @Tags activities
// @Produce json
// @Param type query string false "Activity type filter (Mental, Physical, Posture...)"
// @Success 200 {object} utils.SuccessResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /activities [get]
func (ac *ActivityController) GetActivities(c *fiber.Ctx) error {
	query := ac.DB.Order("source_id")
	if t := c.Query("type"); t != "" {
		query = query.Where("type = ?", t)
	}

	var activities []models.Activity
	if err := query.Find(&activities).Error; err != nil {
		return utils.InternalServerError(c, "Could not fetch activities")
	}

	return utils.Success(c, fiber.StatusOK, activities)
}

// GetActivity godoc
// @Summary Get a training
// @Tags activities
// @Produce json
// @Param id path int true "Activity ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /activities/{id} [get]
func (ac *ActivityController) GetActivity(c *fiber.Ctx) error {
	activityID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid activity ID")
	}

	var activity models.Activity
	if err := ac.DB.First(&activity, activityID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Activity not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	return utils.Success(c, fiber.StatusOK, activity)
}

// GetCategories godoc
// @Summary List mood categories
// @Tags activities
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /categories [get]
func (ac *ActivityController) GetCategories(c *fiber.Ctx) error {
	var categories []models.Category
	if err := ac.DB.Order("source_id").Find(&categories).Error; err != nil {
		return utils.InternalServerError(c, "Could not fetch categories")
	}

	return utils.Success(c, fiber.StatusOK, categories)
}

// CompleteActivity godoc
// @Summary Complete a training
// @Description Records a completion for the authenticated user and checks in the daily streak
// @Tags activities
// @Produce json
// @Param id path int true "Activity ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /activities/{id}/complete [post]
func (ac *ActivityController) CompleteActivity(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, ac.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	activityID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid activity ID")
	}

	var activity models.Activity
	if err := ac.DB.First(&activity, activityID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Activity not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	completion := models.ActivityCompletion{
		UserID:      userID,
		ActivityID:  activity.ID,
		CompletedAt: time.Now(),
	}
	if err := ac.DB.Create(&completion).Error; err != nil {
		return utils.InternalServerError(c, "Could not record completion")
	}

	// Finishing a training counts as being active today. Streak errors stay
	// non-fatal: the completion is already recorded.
	var streak *models.StreakSummary
	if summary, err := ac.Streaks.CheckIn(c.Context(), userID, time.Now()); err == nil {
		streak = &summary
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"completion": completion,
		"streak":     streak,
	})
}

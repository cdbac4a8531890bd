package controllers

import (
	"errors"

	"wellspring/backend/config"
	"wellspring/backend/models"
	"wellspring/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ProfileController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewProfileController(db *gorm.DB, cfg *config.Config) *ProfileController {
	return &ProfileController{DB: db, Cfg: cfg}
}

type UpdateProfileRequest struct {
	Username       *string `json:"username"`
	Bio            *string `json:"bio"`
	Gender         *string `json:"gender"`
	Country        *string `json:"country"`
	AvatarURL      *string `json:"profilepicture"`
	Category       *string `json:"category"`
	GithubUsername *string `json:"githubusername"`
}

// GetProfile godoc
// @Summary Get own profile
// @Description Returns the authenticated user's profile
// @Tags profiles
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /profiles/me [get]
func (pc *ProfileController) GetProfile(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, pc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var profile models.Profile
	if err := pc.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Profile not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"userId":         profile.UserID,
		"username":       profile.Username,
		"bio":            profile.Bio,
		"gender":         profile.Gender,
		"country":        profile.Country,
		"profilepicture": profile.AvatarURL,
		"category":       profile.Category,
		"githubusername": profile.GithubUsername,
	})
}

// UpdateProfile godoc
// @Summary Update own profile
// @Description Partially updates the authenticated user's profile; absent fields are left untouched
// @Tags profiles
// @Accept json
// @Produce json
// @Param input body UpdateProfileRequest true "Fields to update"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /profiles/me [put]
func (pc *ProfileController) UpdateProfile(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, pc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var input UpdateProfileRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	var profile models.Profile
	if err := pc.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return utils.NotFound(c, "Profile not found")
	}

	if input.Username != nil && *input.Username != profile.Username {
		var count int64
		pc.DB.Model(&models.Profile{}).Where("username = ?", *input.Username).Count(&count)
		if count > 0 {
			return utils.Error(c, fiber.StatusConflict, fiber.NewError(fiber.StatusConflict, "Username already taken"))
		}
		profile.Username = *input.Username
	}
	if input.Bio != nil {
		profile.Bio = *input.Bio
	}
	if input.Gender != nil {
		profile.Gender = *input.Gender
	}
	if input.Country != nil {
		profile.Country = *input.Country
	}
	if input.AvatarURL != nil {
		profile.AvatarURL = *input.AvatarURL
	}
	if input.Category != nil {
		profile.Category = *input.Category
	}
	if input.GithubUsername != nil {
		profile.GithubUsername = *input.GithubUsername
	}

	if err := pc.DB.Save(&profile).Error; err != nil {
		return utils.InternalServerError(c, "Could not update profile")
	}

	return utils.Success(c, fiber.StatusOK, profile)
}

// CheckUsername godoc
// @Summary Check username availability
// @Description Returns whether a username is already taken
// @Tags profiles
// @Produce json
// @Param username query string true "Username to check"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Router /profiles/username-taken [get]
func (pc *ProfileController) CheckUsername(c *fiber.Ctx) error {
	username := c.Query("username")
	if username == "" {
		return utils.BadRequest(c, "Username is required")
	}

	var count int64
	if err := pc.DB.Model(&models.Profile{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"username": username,
		"taken":    count > 0,
	})
}

package controllers

import (
	"errors"
	"time"

	"wellspring/backend/config"
	"wellspring/backend/models"
	"wellspring/backend/services"
	"wellspring/backend/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/gofiber/fiber/v2"
)

type AuthController struct {
	DB      *gorm.DB
	Cfg     *config.Config
	Streaks *services.StreakService
}

func NewAuthController(db *gorm.DB, cfg *config.Config, streaks *services.StreakService) *AuthController {
	return &AuthController{DB: db, Cfg: cfg, Streaks: streaks}
}

type RegisterRequest struct {
	Username string `json:"username" example:"john_doe"`
	Email    string `json:"email" example:"user@example.com" format:"email"`
	Password string `json:"password" example:"password123" minLength:"8"`
}

// Register godoc
// @Summary Register a new user
// @Description Creates a new user account and its profile
// @Tags auth
// @Accept json
// @Produce json
// @Param input body RegisterRequest true "User registration data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /auth/register [post]
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var input RegisterRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if input.Username == "" || input.Email == "" || input.Password == "" {
		return utils.BadRequest(c, "Username, email and password are required")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return utils.InternalServerError(c, "Could not hash password")
	}

	user := models.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
	}
	if err := ac.DB.Create(&user).Error; err != nil {
		return utils.InternalServerError(c, "Could not create user")
	}

	// Profile rows exist from the moment an account does
	profile := models.Profile{
		UserID:   user.ID,
		Username: user.Username,
	}
	ac.DB.Create(&profile)

	token, err := utils.GenerateJWTToken(user.ID, ac.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "Could not generate token")
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user": fiber.Map{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
		},
	})
}

// Login godoc
// @Summary User login
// @Description Authenticate user, return JWT token and today's streak
// @Tags auth
// @Accept json
// @Produce json
// @Param request body map[string]interface{} true "Login credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /auth/login [post]
func (ac *AuthController) Login(c *fiber.Ctx) error {
	type LoginInput struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	var input LoginInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	var user models.User
	if err := ac.DB.Where("username = ?", input.Username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.Unauthorized(c, "Invalid credentials")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return utils.Unauthorized(c, "Invalid credentials")
	}

	token, err := utils.GenerateJWTToken(user.ID, ac.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "Could not generate token")
	}

	loginHistory := models.LoginHistory{
		UserID:    user.ID,
		LoginTime: time.Now(),
	}
	ac.DB.Create(&loginHistory)

	// Accounts that predate profile rows get one on first login
	var profile models.Profile
	if errors.Is(ac.DB.Where("user_id = ?", user.ID).First(&profile).Error, gorm.ErrRecordNotFound) {
		ac.DB.Create(&models.Profile{UserID: user.ID, Username: user.Username})
	}

	// Logging in counts as today's check-in. The streak is decorative, so a
	// failure here must not fail the login; the client shows a placeholder.
	var streak *models.StreakSummary
	if summary, err := ac.Streaks.CheckIn(c.Context(), user.ID, time.Now()); err == nil {
		streak = &summary
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user": fiber.Map{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
		},
		"streak": streak,
	})
}

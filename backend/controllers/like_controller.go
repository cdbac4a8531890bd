package controllers

import (
	"errors"
	"strconv"

	"wellspring/backend/config"
	"wellspring/backend/models"
	"wellspring/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type LikesController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewLikesController(db *gorm.DB, cfg *config.Config) *LikesController {
	return &LikesController{DB: db, Cfg: cfg}
}

// TogglePostLike godoc
// @Summary Toggle like on a post
// @Description Likes the post if not yet liked by the caller, otherwise removes the like
// @Tags likes
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /posts/{id}/like [post]
func (lc *LikesController) TogglePostLike(c *fiber.Ctx) error {
	return lc.toggle(c, "post")
}

// ToggleCommentLike godoc
// @Summary Toggle like on a comment
// @Tags likes
// @Produce json
// @Param id path int true "Comment ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /comments/{id}/like [post]
func (lc *LikesController) ToggleCommentLike(c *fiber.Ctx) error {
	return lc.toggle(c, "comment")
}

func (lc *LikesController) toggle(c *fiber.Ctx, targetType string) error {
	userID, err := utils.ExtractUserIDFromToken(c, lc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	targetID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid ID")
	}

	if err := lc.findTarget(targetType, uint(targetID)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Target not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	var existing models.Like
	err = lc.DB.Where("user_id = ? AND target_type = ? AND target_id = ?", userID, targetType, targetID).
		First(&existing).Error

	liked := false
	switch {
	case err == nil:
		// Hard delete so the unique (user, target) index stays reusable
		if err := lc.DB.Unscoped().Delete(&existing).Error; err != nil {
			return utils.InternalServerError(c, "Could not remove like")
		}
		if err := lc.adjustCount(targetType, uint(targetID), -1); err != nil {
			return utils.InternalServerError(c, "Could not update like count")
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		like := models.Like{UserID: userID, TargetType: targetType, TargetID: uint(targetID)}
		if err := lc.DB.Create(&like).Error; err != nil {
			return utils.InternalServerError(c, "Could not create like")
		}
		if err := lc.adjustCount(targetType, uint(targetID), 1); err != nil {
			return utils.InternalServerError(c, "Could not update like count")
		}
		liked = true
	default:
		return utils.InternalServerError(c, "Could not query database")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"liked": liked,
	})
}

func (lc *LikesController) findTarget(targetType string, id uint) error {
	if targetType == "post" {
		var post models.Post
		return lc.DB.First(&post, id).Error
	}
	var comment models.Comment
	return lc.DB.First(&comment, id).Error
}

func (lc *LikesController) adjustCount(targetType string, id uint, delta int) error {
	expr := gorm.Expr("like_count + ?", delta)
	if targetType == "post" {
		return lc.DB.Model(&models.Post{}).Where("id = ?", id).UpdateColumn("like_count", expr).Error
	}
	return lc.DB.Model(&models.Comment{}).Where("id = ?", id).UpdateColumn("like_count", expr).Error
}

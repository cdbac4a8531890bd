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

type CommentsController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewCommentsController(db *gorm.DB, cfg *config.Config) *CommentsController {
	return &CommentsController{DB: db, Cfg: cfg}
}

// AddCommentRequest defines the request body for adding a comment
type AddCommentRequest struct {
	Content string `json:"content" example:"This really helped with my focus!"`
}

// AddComment godoc
// @Summary Add comment to post
// @Description Adds a comment to a post and bumps its comment counter
// @Tags comments
// @Accept json
// @Produce json
// @Param id path int true "Post ID"
// @Param input body AddCommentRequest true "Comment data"
// @Success 201 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /posts/{id}/comments [post]
func (cc *CommentsController) AddComment(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, cc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	postID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid post ID")
	}

	var input AddCommentRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Content == "" {
		return utils.BadRequest(c, "Comment content is required")
	}

	var post models.Post
	if err := cc.DB.First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Post not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	var profile models.Profile
	if err := cc.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return utils.NotFound(c, "Profile not found")
	}

	comment := models.Comment{
		PostID:    post.ID,
		UserID:    userID,
		UserName:  profile.Username,
		UserImage: profile.AvatarURL,
		Content:   input.Content,
	}
	if err := cc.DB.Create(&comment).Error; err != nil {
		return utils.InternalServerError(c, "Could not create comment")
	}

	if err := cc.DB.Model(&post).UpdateColumn("comment_count", gorm.Expr("comment_count + 1")).Error; err != nil {
		return utils.InternalServerError(c, "Could not update comment count")
	}

	return utils.Created(c, comment)
}

// GetComments godoc
// @Summary Get post comments
// @Description Returns paginated comments for a post, newest first
// @Tags comments
// @Produce json
// @Param id path int true "Post ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} utils.PaginatedResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /posts/{id}/comments [get]
func (cc *CommentsController) GetComments(c *fiber.Ctx) error {
	postID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid post ID")
	}

	var post models.Post
	if err := cc.DB.First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Post not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	var total int64
	cc.DB.Model(&models.Comment{}).Where("post_id = ?", post.ID).Count(&total)

	var comments []models.Comment
	if err := cc.DB.Where("post_id = ?", post.ID).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&comments).Error; err != nil {
		return utils.InternalServerError(c, "Could not fetch comments")
	}

	return utils.Paginate(c, comments, total, page, limit)
}

// DeleteComment godoc
// @Summary Delete a comment
// @Description Moderation endpoint; removes a comment and decrements the post counter
// @Tags comments
// @Param id path int true "Comment ID"
// @Success 204
// @Failure 400 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/comments/{id} [delete]
func (cc *CommentsController) DeleteComment(c *fiber.Ctx) error {
	commentID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid comment ID")
	}

	var comment models.Comment
	if err := cc.DB.First(&comment, commentID).Error; err != nil {
		return utils.NotFound(c, "Comment not found")
	}

	if err := cc.DB.Delete(&comment).Error; err != nil {
		return utils.InternalServerError(c, "Could not delete comment")
	}
	cc.DB.Unscoped().Where("target_type = ? AND target_id = ?", "comment", comment.ID).Delete(&models.Like{})
	if err := cc.DB.Model(&models.Post{}).Where("id = ? AND comment_count > 0", comment.PostID).
		UpdateColumn("comment_count", gorm.Expr("comment_count - 1")).Error; err != nil {
		return utils.InternalServerError(c, "Could not update comment count")
	}

	return utils.NoContent(c)
}

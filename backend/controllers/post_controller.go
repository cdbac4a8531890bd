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

type PostController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewPostController(db *gorm.DB, cfg *config.Config) *PostController {
	return &PostController{DB: db, Cfg: cfg}
}

type CreatePostRequest struct {
	TopTitle      string `json:"toptitle" example:"Morning routines that stick"`
	Content       string `json:"content"`
	CoverImageURL string `json:"coverImageURL"`
}

// PostResponse is a feed item with per-caller like state
type PostResponse struct {
	models.Post
	LikedByCurrentUser bool `json:"likedByCurrentUser"`
}

// GetPosts godoc
// @Summary Get post feed
// @Description Returns paginated posts, newest or most liked first
// @Tags posts
// @Produce json
// @Param q query string false "Sort order" Enums(newestfirst, mostlikedfirst) default(newestfirst)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} utils.PaginatedResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /posts [get]
func (pc *PostController) GetPosts(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	order := "created_at DESC"
	if c.Query("q") == "mostlikedfirst" {
		order = "like_count DESC, created_at DESC"
	}

	var total int64
	if err := pc.DB.Model(&models.Post{}).Count(&total).Error; err != nil {
		return utils.InternalServerError(c, "Could not fetch posts")
	}

	var posts []models.Post
	if err := pc.DB.Order(order).Offset(offset).Limit(limit).Find(&posts).Error; err != nil {
		return utils.InternalServerError(c, "Could not fetch posts")
	}

	// Like state is only meaningful for authenticated callers
	liked := map[uint]bool{}
	if userID, err := utils.ExtractUserIDFromToken(c, pc.Cfg); err == nil && len(posts) > 0 {
		ids := make([]uint, 0, len(posts))
		for _, p := range posts {
			ids = append(ids, p.ID)
		}
		var likes []models.Like
		pc.DB.Where("user_id = ? AND target_type = ? AND target_id IN ?", userID, "post", ids).Find(&likes)
		for _, l := range likes {
			liked[l.TargetID] = true
		}
	}

	items := make([]PostResponse, 0, len(posts))
	for _, p := range posts {
		items = append(items, PostResponse{Post: p, LikedByCurrentUser: liked[p.ID]})
	}

	return utils.Paginate(c, items, total, page, limit)
}

// CreatePost godoc
// @Summary Create a post
// @Description Publishes a new post by the authenticated user
// @Tags posts
// @Accept json
// @Produce json
// @Param input body CreatePostRequest true "Post data"
// @Success 201 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /posts [post]
func (pc *PostController) CreatePost(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, pc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var input CreatePostRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.TopTitle == "" || input.Content == "" {
		return utils.BadRequest(c, "Title and content are required")
	}

	var profile models.Profile
	if err := pc.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return utils.NotFound(c, "Profile not found")
	}

	post := models.Post{
		AuthorID:      userID,
		AuthorName:    profile.Username,
		AuthorImage:   profile.AvatarURL,
		TopTitle:      input.TopTitle,
		Content:       input.Content,
		CoverImageURL: input.CoverImageURL,
	}
	if err := pc.DB.Create(&post).Error; err != nil {
		return utils.InternalServerError(c, "Could not create post")
	}

	return utils.Created(c, post)
}

// GetPost godoc
// @Summary Get a single post
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /posts/{id} [get]
func (pc *PostController) GetPost(c *fiber.Ctx) error {
	postID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid post ID")
	}

	var post models.Post
	if err := pc.DB.First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Post not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	likedByCurrentUser := false
	if userID, err := utils.ExtractUserIDFromToken(c, pc.Cfg); err == nil {
		var count int64
		pc.DB.Model(&models.Like{}).
			Where("user_id = ? AND target_type = ? AND target_id = ?", userID, "post", post.ID).
			Count(&count)
		likedByCurrentUser = count > 0
	}

	return utils.Success(c, fiber.StatusOK, PostResponse{Post: post, LikedByCurrentUser: likedByCurrentUser})
}

// DeletePost godoc
// @Summary Delete a post
// @Description Moderation endpoint; removes a post and its comments
// @Tags posts
// @Param id path int true "Post ID"
// @Success 204
// @Failure 400 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/posts/{id} [delete]
func (pc *PostController) DeletePost(c *fiber.Ctx) error {
	postID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid post ID")
	}

	var post models.Post
	if err := pc.DB.First(&post, postID).Error; err != nil {
		return utils.NotFound(c, "Post not found")
	}

	// Likes on the post and on its comments go with it
	var commentIDs []uint
	pc.DB.Model(&models.Comment{}).Where("post_id = ?", post.ID).Pluck("id", &commentIDs)
	if len(commentIDs) > 0 {
		pc.DB.Unscoped().Where("target_type = ? AND target_id IN ?", "comment", commentIDs).Delete(&models.Like{})
	}
	pc.DB.Unscoped().Where("target_type = ? AND target_id = ?", "post", post.ID).Delete(&models.Like{})

	pc.DB.Where("post_id = ?", post.ID).Delete(&models.Comment{})
	if err := pc.DB.Delete(&post).Error; err != nil {
		return utils.InternalServerError(c, "Could not delete post")
	}

	return utils.NoContent(c)
}

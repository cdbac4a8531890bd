package tests

import (
	"fmt"
	"testing"

	"wellspring/backend/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminDeletePost(t *testing.T) {
	admin, adminToken := createUser(t, "moderator")
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", admin.ID).Update("role", "admin").Error)

	_, token := createUser(t, "spammer")
	postID := createPost(t, token, "Buy my course")

	resp, _ := doJSON(t, "DELETE", fmt.Sprintf("/api/admin/posts/%d", postID), adminToken, nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp, _ = doJSON(t, "GET", fmt.Sprintf("/api/posts/%d", postID), "", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestAdminDeletePostRemovesLikesAndComments(t *testing.T) {
	admin, adminToken := createUser(t, "sweeper")
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", admin.ID).Update("role", "admin").Error)

	_, token := createUser(t, "likedauthor")
	postID := createPost(t, token, "Soon to be gone")

	resp, result := doJSON(t, "POST", fmt.Sprintf("/api/posts/%d/comments", postID), token, map[string]string{
		"content": "also gone",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	commentID := uint(result["data"].(map[string]interface{})["ID"].(float64))

	resp, _ = doJSON(t, "POST", fmt.Sprintf("/api/posts/%d/like", postID), token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp, _ = doJSON(t, "POST", fmt.Sprintf("/api/comments/%d/like", commentID), token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, "DELETE", fmt.Sprintf("/api/admin/posts/%d", postID), adminToken, nil)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	// No orphaned like rows for the post or its comments
	var likes int64
	db.Unscoped().Model(&models.Like{}).
		Where("(target_type = ? AND target_id = ?) OR (target_type = ? AND target_id = ?)",
			"post", postID, "comment", commentID).
		Count(&likes)
	assert.Equal(t, int64(0), likes)

	var comments int64
	db.Model(&models.Comment{}).Where("post_id = ?", postID).Count(&comments)
	assert.Equal(t, int64(0), comments)
}

func TestAdminDeleteCommentRemovesLikes(t *testing.T) {
	admin, adminToken := createUser(t, "commentsweeper")
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", admin.ID).Update("role", "admin").Error)

	_, token := createUser(t, "commentowner")
	postID := createPost(t, token, "Keep the post")

	resp, result := doJSON(t, "POST", fmt.Sprintf("/api/posts/%d/comments", postID), token, map[string]string{
		"content": "remove just this",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	commentID := uint(result["data"].(map[string]interface{})["ID"].(float64))

	resp, _ = doJSON(t, "POST", fmt.Sprintf("/api/comments/%d/like", commentID), token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, "DELETE", fmt.Sprintf("/api/admin/comments/%d", commentID), adminToken, nil)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	var likes int64
	db.Unscoped().Model(&models.Like{}).
		Where("target_type = ? AND target_id = ?", "comment", commentID).
		Count(&likes)
	assert.Equal(t, int64(0), likes)

	// The post survives with its counter back at zero
	resp, result = doJSON(t, "GET", fmt.Sprintf("/api/posts/%d", postID), "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(0), result["data"].(map[string]interface{})["CommentCount"])
}

func TestAdminRoutesForbiddenForUsers(t *testing.T) {
	_, token := createUser(t, "ordinary")
	postID := createPost(t, token, "Legit post")

	resp, _ := doJSON(t, "DELETE", fmt.Sprintf("/api/admin/posts/%d", postID), token, nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

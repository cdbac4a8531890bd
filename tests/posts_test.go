package tests

import (
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createPost(t *testing.T, token, title string) uint {
	t.Helper()

	resp, result := doJSON(t, "POST", "/api/posts", token, map[string]string{
		"toptitle": title,
		"content":  "Some thoughts on " + title,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	data := result["data"].(map[string]interface{})
	return uint(data["ID"].(float64))
}

func TestCreateAndFetchPosts(t *testing.T) {
	_, token := createUser(t, "author")
	createPost(t, token, "Morning routines")

	resp, result := doJSON(t, "GET", "/api/posts?page=1&limit=10", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, result["success"])
	assert.Equal(t, float64(1), result["page"])
	assert.GreaterOrEqual(t, result["total"].(float64), float64(1))
	items := result["data"].([]interface{})
	assert.NotEmpty(t, items)
}

func TestCreatePostRequiresAuth(t *testing.T) {
	resp, _ := doJSON(t, "POST", "/api/posts", "", map[string]string{
		"toptitle": "nope",
		"content":  "nope",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestComments(t *testing.T) {
	_, token := createUser(t, "commenter")
	postID := createPost(t, token, "Stretching habits")

	resp, _ := doJSON(t, "POST", fmt.Sprintf("/api/posts/%d/comments", postID), token, map[string]string{
		"content": "Tried this today, worked great",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, result := doJSON(t, "GET", fmt.Sprintf("/api/posts/%d/comments?page=1&limit=10", postID), "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), result["total"])
	comments := result["data"].([]interface{})
	require.Len(t, comments, 1)
	comment := comments[0].(map[string]interface{})
	assert.Equal(t, "Tried this today, worked great", comment["Content"])

	// The post's denormalized counter follows
	resp, result = doJSON(t, "GET", fmt.Sprintf("/api/posts/%d", postID), "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	post := result["data"].(map[string]interface{})
	assert.Equal(t, float64(1), post["CommentCount"])
}

func TestCommentsOnMissingPost(t *testing.T) {
	resp, _ := doJSON(t, "GET", "/api/posts/999999/comments", "", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestToggleLike(t *testing.T) {
	_, token := createUser(t, "liker")
	postID := createPost(t, token, "Focus sprints")

	resp, result := doJSON(t, "POST", fmt.Sprintf("/api/posts/%d/like", postID), token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, result["data"].(map[string]interface{})["liked"])

	resp, result = doJSON(t, "GET", fmt.Sprintf("/api/posts/%d", postID), token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	post := result["data"].(map[string]interface{})
	assert.Equal(t, float64(1), post["LikeCount"])
	assert.Equal(t, true, post["likedByCurrentUser"])

	// Second toggle removes the like
	resp, result = doJSON(t, "POST", fmt.Sprintf("/api/posts/%d/like", postID), token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, false, result["data"].(map[string]interface{})["liked"])

	resp, result = doJSON(t, "GET", fmt.Sprintf("/api/posts/%d", postID), token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	post = result["data"].(map[string]interface{})
	assert.Equal(t, float64(0), post["LikeCount"])
	assert.Equal(t, false, post["likedByCurrentUser"])
}

func TestToggleLikeLegacyRoute(t *testing.T) {
	_, token := createUser(t, "legacyliker")
	postID := createPost(t, token, "Old client habits")

	// The /api/likes prefix stays routable for older clients
	resp, result := doJSON(t, "POST", fmt.Sprintf("/api/likes/posts/%d", postID), token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, result["data"].(map[string]interface{})["liked"])

	resp, result = doJSON(t, "GET", fmt.Sprintf("/api/posts/%d", postID), token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), result["data"].(map[string]interface{})["LikeCount"])
}

func TestToggleCommentLike(t *testing.T) {
	_, token := createUser(t, "commentliker")
	postID := createPost(t, token, "Eye strain breaks")

	resp, result := doJSON(t, "POST", fmt.Sprintf("/api/posts/%d/comments", postID), token, map[string]string{
		"content": "The hourly reminder works",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	commentID := uint(result["data"].(map[string]interface{})["ID"].(float64))

	resp, result = doJSON(t, "POST", fmt.Sprintf("/api/comments/%d/like", commentID), token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, result["data"].(map[string]interface{})["liked"])

	resp, result = doJSON(t, "GET", fmt.Sprintf("/api/posts/%d/comments", postID), "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	comments := result["data"].([]interface{})
	require.Len(t, comments, 1)
	assert.Equal(t, float64(1), comments[0].(map[string]interface{})["LikeCount"])

	resp, result = doJSON(t, "POST", fmt.Sprintf("/api/comments/%d/like", commentID), token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, false, result["data"].(map[string]interface{})["liked"])

	resp, result = doJSON(t, "GET", fmt.Sprintf("/api/posts/%d/comments", postID), "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	comments = result["data"].([]interface{})
	require.Len(t, comments, 1)
	assert.Equal(t, float64(0), comments[0].(map[string]interface{})["LikeCount"])
}

func TestMostLikedFirstOrdering(t *testing.T) {
	_, token := createUser(t, "ranker")
	first := createPost(t, token, "Unpopular take")
	second := createPost(t, token, "Popular take")

	resp, _ := doJSON(t, "POST", fmt.Sprintf("/api/posts/%d/like", second), token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, result := doJSON(t, "GET", "/api/posts?q=mostlikedfirst&page=1&limit=5", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	items := result["data"].([]interface{})
	require.NotEmpty(t, items)
	top := items[0].(map[string]interface{})
	assert.Equal(t, float64(second), top["ID"])
	assert.NotEqual(t, float64(first), top["ID"])
}

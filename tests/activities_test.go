package tests

import (
	"fmt"
	"testing"

	"wellspring/backend/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListActivities(t *testing.T) {
	resp, result := doJSON(t, "GET", "/api/activities", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	items := result["data"].([]interface{})
	assert.GreaterOrEqual(t, len(items), 5)
}

func TestListActivitiesByType(t *testing.T) {
	resp, result := doJSON(t, "GET", "/api/activities?type=Mental", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	items := result["data"].([]interface{})
	require.NotEmpty(t, items)
	for _, item := range items {
		assert.Equal(t, "Mental", item.(map[string]interface{})["Type"])
	}
}

func TestGetCategories(t *testing.T) {
	resp, result := doJSON(t, "GET", "/api/categories", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	items := result["data"].([]interface{})
	assert.Len(t, items, 5)
}

func TestGetMissingActivity(t *testing.T) {
	resp, _ := doJSON(t, "GET", "/api/activities/999999", "", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestCompleteActivity(t *testing.T) {
	_, token := createUser(t, "finisher")

	var activity models.Activity
	require.NoError(t, db.Where("source_id = ?", "1012").First(&activity).Error)

	resp, result := doJSON(t, "POST", fmt.Sprintf("/api/activities/%d/complete", activity.ID), token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	data := result["data"].(map[string]interface{})
	assert.NotNil(t, data["completion"])

	// Completing a training also checks in the streak
	streak := data["streak"].(map[string]interface{})
	assert.Equal(t, float64(1), streak["streak"])
}

func TestProgressOverview(t *testing.T) {
	_, token := createUser(t, "tracker")

	var activity models.Activity
	require.NoError(t, db.Where("source_id = ?", "3002").First(&activity).Error)

	resp, _ := doJSON(t, "POST", fmt.Sprintf("/api/activities/%d/complete", activity.ID), token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, result := doJSON(t, "GET", "/api/progress/overview", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	data := result["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["totalCompletions"])
	assert.Equal(t, float64(1), data["recentCompletions"])
	streak := data["streak"].(map[string]interface{})
	assert.Equal(t, float64(1), streak["streak"])
	assert.Equal(t, float64(1), streak["longest"])
}

package tests

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreakCheckInIsIdempotent(t *testing.T) {
	_, token := createUser(t, "streaker")

	resp, result := doJSON(t, "POST", "/api/streaks/checkin", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	data := result["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["streak"])
	assert.Equal(t, float64(1), data["longest"])

	// Same calendar day: identical values back
	resp, result = doJSON(t, "POST", "/api/streaks/checkin", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	data = result["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["streak"])
	assert.Equal(t, float64(1), data["longest"])
}

func TestGetStreakWithoutCheckIn(t *testing.T) {
	_, token := createUser(t, "nostreak")

	resp, _ := doJSON(t, "GET", "/api/streaks", token, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestGetStreakDoesNotMutate(t *testing.T) {
	_, token := createUser(t, "reader")

	resp, _ := doJSON(t, "POST", "/api/streaks/checkin", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	for i := 0; i < 3; i++ {
		resp, result := doJSON(t, "GET", "/api/streaks", token, nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		data := result["data"].(map[string]interface{})
		assert.Equal(t, float64(1), data["streak"])
		assert.Equal(t, float64(1), data["longest"])
	}
}

func TestStreakRequiresAuth(t *testing.T) {
	resp, _ := doJSON(t, "POST", "/api/streaks/checkin", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

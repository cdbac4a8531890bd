package storage

import (
	"context"
	"testing"
	"time"

	"wellspring/backend/models"
	"wellspring/backend/services"
	"wellspring/backend/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreakStoreRoundTrip(t *testing.T) {
	db, err := utils.InitTestDB()
	require.NoError(t, err)
	store := NewGormStreakStore(db)
	ctx := context.Background()

	_, err = store.FindByUser(ctx, 7)
	assert.ErrorIs(t, err, services.ErrNotFound)

	rec := &models.StreakRecord{
		ID:            "doc-1",
		UserID:        7,
		LastCheckIn:   time.Date(2024, time.January, 1, 10, 0, 0, 0, time.UTC),
		StreakCount:   1,
		LongestStreak: 1,
	}
	require.NoError(t, store.Create(ctx, rec))

	got, err := store.FindByUser(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "doc-1", got.ID)
	assert.Equal(t, 1, got.StreakCount)

	got.StreakCount = 2
	got.LongestStreak = 2
	require.NoError(t, store.Update(ctx, got))

	again, err := store.FindByUser(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, 2, again.StreakCount)
	assert.Equal(t, 2, again.LongestStreak)
}

func TestStreakStoreEndToEnd(t *testing.T) {
	db, err := utils.InitTestDB()
	require.NoError(t, err)
	svc := services.NewStreakService(NewGormStreakStore(db))
	ctx := context.Background()

	day := func(d int) time.Time {
		return time.Date(2024, time.February, d, 8, 0, 0, 0, time.UTC)
	}

	got, err := svc.CheckIn(ctx, 3, day(1))
	require.NoError(t, err)
	assert.Equal(t, models.StreakSummary{Streak: 1, Longest: 1}, got)

	got, err = svc.CheckIn(ctx, 3, day(2))
	require.NoError(t, err)
	assert.Equal(t, models.StreakSummary{Streak: 2, Longest: 2}, got)

	got, err = svc.CheckIn(ctx, 3, day(5))
	require.NoError(t, err)
	assert.Equal(t, models.StreakSummary{Streak: 1, Longest: 2}, got)
}

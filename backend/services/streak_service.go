package services

import (
	"context"
	"errors"
	"time"

	"wellspring/backend/models"

	"github.com/google/uuid"
)

var (
	// ErrNotFound means the user or record could not be resolved by the store.
	ErrNotFound = errors.New("streak record not found")
	// ErrStoreUnavailable wraps transport/driver failures talking to the store.
	// Callers should surface it as "streak unavailable", never as a fatal error.
	ErrStoreUnavailable = errors.New("streak store unavailable")
)

// StreakStore is the document-store boundary the streak logic runs against.
// Point lookups by user are expected to be fast; no transaction spans the
// read-then-write, so concurrent check-ins from two devices are last-writer-wins.
type StreakStore interface {
	FindByUser(ctx context.Context, userID uint) (*models.StreakRecord, error)
	Create(ctx context.Context, rec *models.StreakRecord) error
	Update(ctx context.Context, rec *models.StreakRecord) error
}

type StreakService struct {
	Store StreakStore
}

func NewStreakService(store StreakStore) *StreakService {
	return &StreakService{Store: store}
}

// dayNumber collapses a timestamp to a calendar-day integer (days since the
// Unix epoch in t's location). Differencing day numbers instead of subtracting
// wall-clock times keeps streaks correct across DST transitions, where a
// "day" is not 24 hours long.
func dayNumber(t time.Time) int {
	y, m, d := t.Date()
	return int(time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400)
}

// CheckIn records that the user was active on now's calendar day and returns
// the resulting streak. Repeated calls on the same day are no-ops returning
// current values, so it is safe to fire on every app foreground.
func (s *StreakService) CheckIn(ctx context.Context, userID uint, now time.Time) (models.StreakSummary, error) {
	rec, err := s.Store.FindByUser(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		rec = &models.StreakRecord{
			ID:            uuid.NewString(),
			UserID:        userID,
			LastCheckIn:   now,
			StreakCount:   1,
			LongestStreak: 1,
		}
		if err := s.Store.Create(ctx, rec); err != nil {
			return models.StreakSummary{}, err
		}
		return models.StreakSummary{Streak: 1, Longest: 1}, nil
	}
	if err != nil {
		return models.StreakSummary{}, err
	}

	// A record claiming longest < current is malformed; heal it instead of
	// failing the call.
	healed := false
	if rec.LongestStreak < rec.StreakCount {
		rec.LongestStreak = rec.StreakCount
		healed = true
	}

	gap := dayNumber(now) - dayNumber(rec.LastCheckIn)
	if gap == 0 {
		if healed {
			if err := s.Store.Update(ctx, rec); err != nil {
				return models.StreakSummary{}, err
			}
		}
		return models.StreakSummary{Streak: rec.StreakCount, Longest: rec.LongestStreak}, nil
	}

	newStreak := 1
	if gap == 1 {
		newStreak = rec.StreakCount + 1
	}

	rec.LastCheckIn = now
	rec.StreakCount = newStreak
	if newStreak > rec.LongestStreak {
		rec.LongestStreak = newStreak
	}
	if err := s.Store.Update(ctx, rec); err != nil {
		return models.StreakSummary{}, err
	}
	return models.StreakSummary{Streak: rec.StreakCount, Longest: rec.LongestStreak}, nil
}

// Current returns the user's streak without recording a check-in. ErrNotFound
// means the user has never checked in. A malformed record is healed with a
// write here as well, so the corruption does not outlive the first read.
func (s *StreakService) Current(ctx context.Context, userID uint) (models.StreakSummary, error) {
	rec, err := s.Store.FindByUser(ctx, userID)
	if err != nil {
		return models.StreakSummary{}, err
	}
	if rec.LongestStreak < rec.StreakCount {
		rec.LongestStreak = rec.StreakCount
		if err := s.Store.Update(ctx, rec); err != nil {
			return models.StreakSummary{}, err
		}
	}
	return models.StreakSummary{Streak: rec.StreakCount, Longest: rec.LongestStreak}, nil
}

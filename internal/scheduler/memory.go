package scheduler

import (
	"errors"
	"fmt"
	"math"
	"time"
)

const (
	DefaultEaseFactor = 2.5
	MinEaseFactor     = 1.3
	MaxEaseFactor     = 2.5

	MinIntervalDays = 1
	MaxIntervalDays = 365

	MinQuality = 0
	MaxQuality = 5

	// PassingQuality is the lowest quality grade that counts as a
	// successful recall.
	PassingQuality = 3

	// MatureIntervalDays separates learning cards from mature cards.
	MatureIntervalDays = 21
)

// ErrInvalidQuality is returned when a quality grade is outside [0, 5].
var ErrInvalidQuality = errors.New("quality must be between 0 and 5")

// MemoryModel owns the SM-2 style update rule for per-card memory state.
// All methods are pure: inputs are never mutated.
type MemoryModel struct {
	now func() time.Time
}

// NewMemoryModel creates a MemoryModel using the wall clock.
func NewMemoryModel() *MemoryModel {
	return &MemoryModel{now: time.Now}
}

// NewMemoryModelAt creates a MemoryModel with an injected clock for tests.
func NewMemoryModelAt(now func() time.Time) *MemoryModel {
	if now == nil {
		now = time.Now
	}
	return &MemoryModel{now: now}
}

// InitializeCardMemory returns the state of a card after it has been seen
// for the first time: one-day interval, default ease, no history.
func (m *MemoryModel) InitializeCardMemory(itemID string) CardMemoryState {
	now := m.now()
	return CardMemoryState{
		ItemID:         itemID,
		Interval:       MinIntervalDays,
		EaseFactor:     DefaultEaseFactor,
		Repetitions:    0,
		NextReviewDate: now.AddDate(0, 0, 1),
		LastReviewDate: now,
		Created:        now,
		Updated:        now,
	}
}

// CalculateNextReview applies one graded answer to a card's memory state
// and returns the updated state.
//
// On success (quality >= 3) the interval follows the SM-2 ladder keyed on
// the pre-update repetition count: 1 day, then 6 days, then the previous
// interval scaled by the ease factor. On failure the repetition count,
// interval and streak all reset. The ease factor is adjusted from the raw
// quality grade in both branches, then clamped to [1.3, 2.5]; the interval
// is clamped to [1, 365].
func (m *MemoryModel) CalculateNextReview(state CardMemoryState, quality int) (CardMemoryState, error) {
	if quality < MinQuality || quality > MaxQuality {
		return CardMemoryState{}, fmt.Errorf("quality %d: %w", quality, ErrInvalidQuality)
	}

	next := state

	if quality >= PassingQuality {
		next.Streak = state.Streak + 1
		switch state.Repetitions {
		case 0:
			next.Interval = 1
		case 1:
			next.Interval = 6
		default:
			next.Interval = int(math.Round(float64(state.Interval) * state.EaseFactor))
		}
		next.Repetitions = state.Repetitions + 1
	} else {
		next.Repetitions = 0
		next.Interval = 1
		next.Streak = 0
	}

	q := float64(quality)
	next.EaseFactor = state.EaseFactor + (0.1 - (5-q)*(0.08+(5-q)*0.02))
	next.EaseFactor = clampFloat(next.EaseFactor, MinEaseFactor, MaxEaseFactor)
	next.Interval = clampInt(next.Interval, MinIntervalDays, MaxIntervalDays)

	now := m.now()
	next.NextReviewDate = now.AddDate(0, 0, next.Interval)
	next.LastReviewDate = now
	next.Updated = now

	next.AverageQuality = (state.AverageQuality*float64(state.TotalReviews) + q) / float64(state.TotalReviews+1)
	next.TotalReviews = state.TotalReviews + 1

	return next, nil
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

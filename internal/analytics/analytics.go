// Package analytics derives aggregate study statistics from memory-state
// snapshots and session history.
package analytics

import (
	"sort"
	"time"

	"github.com/memorist/memorist/internal/scheduler"
)

const (
	// StruggleMinReviews is how many reviews a card needs before it can
	// be classified as struggling; fewer reviews is not enough signal.
	StruggleMinReviews = 3

	// struggleQualityCeiling marks cards answered below passing on average.
	struggleQualityCeiling = 3.0

	masteredQualityFloor = 4.5
	masteredIntervalDays = 30
)

// StudySummary aggregates sessions from a recent window.
type StudySummary struct {
	SessionsCount     int
	TotalCardsStudied int
	AverageAccuracy   float64 // percentage of correct cards
	TotalStudyMinutes float64
	StreakDays        int
}

// AnalyticsEngine computes study summaries and card classifications. All
// methods are pure given the injected clock.
type AnalyticsEngine struct {
	now func() time.Time
}

// NewAnalyticsEngine creates an AnalyticsEngine using the wall clock.
func NewAnalyticsEngine() *AnalyticsEngine {
	return &AnalyticsEngine{now: time.Now}
}

// NewAnalyticsEngineAt creates an AnalyticsEngine with an injected clock
// for tests.
func NewAnalyticsEngineAt(now func() time.Time) *AnalyticsEngine {
	if now == nil {
		now = time.Now
	}
	return &AnalyticsEngine{now: now}
}

// StudySummary aggregates the finalized sessions that started within the
// last `days` days. StreakDays counts consecutive calendar days of study
// ending today: the walk backward from today stops at the first day with
// no qualifying session, so a gap today yields zero.
func (e *AnalyticsEngine) StudySummary(sessions []scheduler.StudySession, days int) StudySummary {
	now := e.now()
	cutoff := now.AddDate(0, 0, -days)

	var summary StudySummary
	var correct int
	var durationMs int64
	activeDays := make(map[string]struct{})

	for _, session := range sessions {
		if session.EndTime == nil || session.StartTime.Before(cutoff) {
			continue
		}
		summary.SessionsCount++
		summary.TotalCardsStudied += len(session.CardsStudied)
		correct += session.CorrectCards
		durationMs += session.DurationMs
		activeDays[dayKey(session.StartTime)] = struct{}{}
	}

	if summary.TotalCardsStudied > 0 {
		summary.AverageAccuracy = 100 * float64(correct) / float64(summary.TotalCardsStudied)
	}
	summary.TotalStudyMinutes = float64(durationMs) / 60000
	summary.StreakDays = streakEndingToday(activeDays, now)

	return summary
}

func streakEndingToday(activeDays map[string]struct{}, now time.Time) int {
	streak := 0
	for day := now; ; day = day.AddDate(0, 0, -1) {
		if _, ok := activeDays[dayKey(day)]; !ok {
			break
		}
		streak++
	}
	return streak
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// StruggleCards returns cards the learner keeps missing: sub-passing
// average quality over at least StruggleMinReviews reviews, hardest first.
func (e *AnalyticsEngine) StruggleCards(states map[string]scheduler.CardMemoryState, limit int) []scheduler.CardMemoryState {
	struggling := make([]scheduler.CardMemoryState, 0, len(states))
	for _, state := range states {
		if state.AverageQuality < struggleQualityCeiling && state.TotalReviews >= StruggleMinReviews {
			struggling = append(struggling, state)
		}
	}

	sort.Slice(struggling, func(i, j int) bool {
		if struggling[i].AverageQuality != struggling[j].AverageQuality {
			return struggling[i].AverageQuality < struggling[j].AverageQuality
		}
		return struggling[i].ItemID < struggling[j].ItemID
	})

	return truncate(struggling, limit)
}

// MasteredCards returns well-known cards: near-perfect average quality and
// a long review interval, longest interval first.
func (e *AnalyticsEngine) MasteredCards(states map[string]scheduler.CardMemoryState, limit int) []scheduler.CardMemoryState {
	mastered := make([]scheduler.CardMemoryState, 0, len(states))
	for _, state := range states {
		if state.AverageQuality >= masteredQualityFloor && state.Interval >= masteredIntervalDays {
			mastered = append(mastered, state)
		}
	}

	sort.Slice(mastered, func(i, j int) bool {
		if mastered[i].Interval != mastered[j].Interval {
			return mastered[i].Interval > mastered[j].Interval
		}
		return mastered[i].ItemID < mastered[j].ItemID
	})

	return truncate(mastered, limit)
}

func truncate(states []scheduler.CardMemoryState, limit int) []scheduler.CardMemoryState {
	if limit < 0 {
		limit = 0
	}
	if len(states) > limit {
		return states[:limit]
	}
	return states
}

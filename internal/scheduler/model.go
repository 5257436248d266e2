// Package scheduler decides when flashcards should next be reviewed and
// composes bounded study sessions from due and unstudied cards.
package scheduler

import "time"

// CardMemoryState is the per-card memory state driving review scheduling.
// One exists per studied card; cards that have never been studied have no
// state at all and are treated as new.
type CardMemoryState struct {
	ItemID         string    `json:"itemId"`
	Interval       int       `json:"interval"`
	EaseFactor     float64   `json:"easeFactor"`
	Repetitions    int       `json:"repetitions"`
	NextReviewDate time.Time `json:"nextReviewDate"`
	LastReviewDate time.Time `json:"lastReviewDate"`
	TotalReviews   int       `json:"totalReviews"`
	AverageQuality float64   `json:"averageQuality"`
	Streak         int       `json:"streak"`
	Created        time.Time `json:"created"`
	Updated        time.Time `json:"updated"`
}

// StudyResult is a single graded answer for a card.
type StudyResult struct {
	ItemID         string    `json:"itemId"`
	Quality        int       `json:"quality"`
	ResponseTimeMs int64     `json:"responseTime,omitempty"`
	StudiedAt      time.Time `json:"studiedAt"`
}

// IsCorrect reports whether the result counts as a successful recall.
func (r StudyResult) IsCorrect() bool {
	return r.Quality >= PassingQuality
}

// StudySession records one study sitting. EndTime is nil until the session
// is finalized; finalized sessions are immutable once persisted.
type StudySession struct {
	SessionID    string        `json:"sessionId"`
	StartTime    time.Time     `json:"startTime"`
	EndTime      *time.Time    `json:"endTime,omitempty"`
	CardsStudied []string      `json:"cardsStudied"`
	Results      []StudyResult `json:"results"`
	TotalCards   int           `json:"totalCards"`
	CorrectCards int           `json:"correctCards"`
	DurationMs   int64         `json:"sessionDuration,omitempty"`
}

// StudyStats summarizes a memory-state snapshot for progress reporting.
//
// NewCards is always 0: a snapshot only contains cards that have been
// studied at least once, so unseen cards are invisible to it. Callers that
// need a true new-card count must intersect the full card pool with the
// snapshot via DueSelector.NewCards.
type StudyStats struct {
	TotalCards        int
	DueToday          int
	NewCards          int
	Learning          int
	Mature            int
	AverageEaseFactor float64
	AverageInterval   float64
	LongestStreak     int
}

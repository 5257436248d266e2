package scheduler

import (
	"fmt"
	"maps"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// SessionOptions bounds the composition of a study session. Negative
// limits are treated as zero.
type SessionOptions struct {
	MaxCards        int
	NewCardLimit    int
	ReviewCardLimit int
	IncludeNewCards bool
}

// DefaultSessionOptions returns the session bounds used when the caller
// has no preference.
func DefaultSessionOptions() SessionOptions {
	return SessionOptions{
		MaxCards:        20,
		NewCardLimit:    10,
		ReviewCardLimit: 15,
		IncludeNewCards: true,
	}
}

// SessionPlan is the outcome of composing a study session: the shuffled
// cards to present, plus the review/new split they were selected from.
type SessionPlan struct {
	SessionID    string
	SessionCards []string
	ReviewCards  []string
	NewCards     []string
}

// SessionComposer builds bounded study sessions and applies study results
// back onto memory-state snapshots.
type SessionComposer struct {
	model    *MemoryModel
	selector *DueSelector
	rng      *rand.Rand
	newID    func() string
}

// NewSessionComposer creates a SessionComposer. A nil rng falls back to a
// time-seeded source; tests pass a seeded one for reproducible shuffles.
func NewSessionComposer(model *MemoryModel, selector *DueSelector, rng *rand.Rand) *SessionComposer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &SessionComposer{
		model:    model,
		selector: selector,
		rng:      rng,
		newID:    uuid.NewString,
	}
}

// CreateStudySession selects due cards first, then new cards, caps the
// combined list at MaxCards and shuffles it. Review cards are concatenated
// ahead of new cards before the cap is applied, so when more cards are due
// than MaxCards no new cards enter the session; the shuffle only reorders
// the already-selected subset.
func (c *SessionComposer) CreateStudySession(allItemIDs []string, states map[string]CardMemoryState, opts SessionOptions) SessionPlan {
	reviewStates := c.selector.CardsDueForReview(states, opts.ReviewCardLimit)
	reviewCards := make([]string, len(reviewStates))
	for i, state := range reviewStates {
		reviewCards[i] = state.ItemID
	}

	var newCards []string
	if opts.IncludeNewCards {
		newCards = c.selector.NewCards(allItemIDs, states, opts.NewCardLimit)
	}

	combined := make([]string, 0, len(reviewCards)+len(newCards))
	combined = append(combined, reviewCards...)
	combined = append(combined, newCards...)
	combined = truncate(combined, opts.MaxCards)

	sessionCards := make([]string, len(combined))
	copy(sessionCards, combined)
	c.rng.Shuffle(len(sessionCards), func(i, j int) {
		sessionCards[i], sessionCards[j] = sessionCards[j], sessionCards[i]
	})

	return SessionPlan{
		SessionID:    c.newID(),
		SessionCards: sessionCards,
		ReviewCards:  reviewCards,
		NewCards:     newCards,
	}
}

// ProcessStudyResult applies one result to a snapshot and returns a new
// snapshot with exactly that card's entry replaced, or appended when the
// card has never been studied. The input snapshot is not modified.
func (c *SessionComposer) ProcessStudyResult(result StudyResult, states map[string]CardMemoryState) (map[string]CardMemoryState, error) {
	state, ok := states[result.ItemID]
	if !ok {
		state = c.model.InitializeCardMemory(result.ItemID)
	}

	next, err := c.model.CalculateNextReview(state, result.Quality)
	if err != nil {
		return nil, fmt.Errorf("model.CalculateNextReview(%s) > %w", result.ItemID, err)
	}

	updated := maps.Clone(states)
	if updated == nil {
		updated = make(map[string]CardMemoryState, 1)
	}
	updated[result.ItemID] = next
	return updated, nil
}

// StudyStats summarizes a snapshot: due counts, learning/mature split,
// averages and the longest per-card streak.
func (c *SessionComposer) StudyStats(states map[string]CardMemoryState) StudyStats {
	stats := StudyStats{TotalCards: len(states)}
	if len(states) == 0 {
		return stats
	}

	endOfToday := endOfDay(c.selector.now())

	var totalEase, totalInterval float64
	for _, state := range states {
		if !state.NextReviewDate.After(endOfToday) {
			stats.DueToday++
		}
		if state.Interval < MatureIntervalDays {
			stats.Learning++
		} else {
			stats.Mature++
		}
		totalEase += state.EaseFactor
		totalInterval += float64(state.Interval)
		if state.Streak > stats.LongestStreak {
			stats.LongestStreak = state.Streak
		}
	}

	stats.AverageEaseFactor = totalEase / float64(len(states))
	stats.AverageInterval = totalInterval / float64(len(states))
	return stats
}

func endOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

package scheduler

import (
	"sort"
	"time"
)

// DueSelector picks which cards are due for review and which cards in a
// pool have never been studied. Both selections are pure and deterministic
// for identical inputs and clock.
type DueSelector struct {
	now func() time.Time
}

// NewDueSelector creates a DueSelector using the wall clock.
func NewDueSelector() *DueSelector {
	return &DueSelector{now: time.Now}
}

// NewDueSelectorAt creates a DueSelector with an injected clock for tests.
func NewDueSelectorAt(now func() time.Time) *DueSelector {
	if now == nil {
		now = time.Now
	}
	return &DueSelector{now: now}
}

// CardsDueForReview returns the cards whose next review date has passed,
// most overdue first. Ties are broken by ease factor ascending so that
// harder cards surface first, then by item ID for a stable order. A
// negative limit is treated as zero.
func (s *DueSelector) CardsDueForReview(states map[string]CardMemoryState, limit int) []CardMemoryState {
	now := s.now()

	due := make([]CardMemoryState, 0, len(states))
	for _, state := range states {
		if !state.NextReviewDate.After(now) {
			due = append(due, state)
		}
	}

	sort.Slice(due, func(i, j int) bool {
		overdueI := now.Sub(due[i].NextReviewDate)
		overdueJ := now.Sub(due[j].NextReviewDate)
		if overdueI != overdueJ {
			return overdueI > overdueJ
		}
		if due[i].EaseFactor != due[j].EaseFactor {
			return due[i].EaseFactor < due[j].EaseFactor
		}
		return due[i].ItemID < due[j].ItemID
	})

	return truncate(due, limit)
}

// NewCards returns the IDs from allItemIDs that have no memory state yet,
// preserving pool order. A negative limit is treated as zero.
func (s *DueSelector) NewCards(allItemIDs []string, states map[string]CardMemoryState, limit int) []string {
	fresh := make([]string, 0, len(allItemIDs))
	for _, id := range allItemIDs {
		if _, ok := states[id]; !ok {
			fresh = append(fresh, id)
		}
	}
	return truncate(fresh, limit)
}

func truncate[T any](items []T, limit int) []T {
	if limit < 0 {
		limit = 0
	}
	if len(items) > limit {
		return items[:limit]
	}
	return items
}

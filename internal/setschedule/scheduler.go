package setschedule

import "time"

// SetScheduler computes practice dates and filters sets that are due.
// Monthly cadence uses calendar-month arithmetic, not a fixed 30 days;
// every other frequency maps to a fixed day count.
type SetScheduler struct {
	now func() time.Time
}

// NewSetScheduler creates a SetScheduler using the wall clock.
func NewSetScheduler() *SetScheduler {
	return &SetScheduler{now: time.Now}
}

// NewSetSchedulerAt creates a SetScheduler with an injected clock for tests.
func NewSetSchedulerAt(now func() time.Time) *SetScheduler {
	if now == nil {
		now = time.Now
	}
	return &SetScheduler{now: now}
}

// NextPracticeDate returns when a set should next be practiced, counted
// from now. customDays only applies to the custom frequency and defaults
// to 7 when unset; unknown frequencies fall back to weekly.
func (s *SetScheduler) NextPracticeDate(frequency PracticeFrequency, customDays int) time.Time {
	now := s.now()
	if frequency == FrequencyMonthly {
		return now.AddDate(0, 1, 0)
	}
	return now.AddDate(0, 0, s.daysUntilNext(frequency, customDays))
}

func (s *SetScheduler) daysUntilNext(frequency PracticeFrequency, customDays int) int {
	switch frequency {
	case FrequencyDaily:
		return 1
	case FrequencyEvery2Days:
		return 2
	case FrequencyWeekly:
		return 7
	case FrequencyBiWeekly:
		return 14
	case FrequencyCustom:
		if customDays > 0 {
			return customDays
		}
		return DefaultCustomDays
	default:
		return 7
	}
}

// SetsDueForPractice returns the active sets whose practice date has
// passed, preserving input order.
func (s *SetScheduler) SetsDueForPractice(schedules []FlashcardSetSchedule) []FlashcardSetSchedule {
	now := s.now()
	due := make([]FlashcardSetSchedule, 0, len(schedules))
	for _, schedule := range schedules {
		if schedule.IsActive && !schedule.NextPracticeDate.After(now) {
			due = append(due, schedule)
		}
	}
	return due
}

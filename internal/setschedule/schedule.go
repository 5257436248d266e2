// Package setschedule implements fixed-cadence practice reminders for
// flashcard sets, independent of per-card review scheduling.
package setschedule

import "time"

// PracticeFrequency is how often a set should be practiced.
type PracticeFrequency string

const (
	FrequencyDaily      PracticeFrequency = "daily"
	FrequencyEvery2Days PracticeFrequency = "every_2_days"
	FrequencyWeekly     PracticeFrequency = "weekly"
	FrequencyBiWeekly   PracticeFrequency = "bi_weekly"
	FrequencyMonthly    PracticeFrequency = "monthly"
	FrequencyCustom     PracticeFrequency = "custom"

	// DefaultCustomDays is used when a custom frequency has no day count.
	DefaultCustomDays = 7
)

// Frequencies lists every supported practice frequency.
var Frequencies = []PracticeFrequency{
	FrequencyDaily,
	FrequencyEvery2Days,
	FrequencyWeekly,
	FrequencyBiWeekly,
	FrequencyMonthly,
	FrequencyCustom,
}

// IsValid reports whether f is one of the supported frequencies.
func (f PracticeFrequency) IsValid() bool {
	for _, known := range Frequencies {
		if f == known {
			return true
		}
	}
	return false
}

// FlashcardSetSchedule is the practice reminder state for one set.
// LastPracticed is nil until the set has been practiced once.
type FlashcardSetSchedule struct {
	SetID               string            `json:"setId"`
	PracticeFrequency   PracticeFrequency `json:"practiceFrequency"`
	CustomFrequencyDays int               `json:"customFrequencyDays,omitempty"`
	NextPracticeDate    time.Time         `json:"nextPracticeDate"`
	LastPracticed       *time.Time        `json:"lastPracticed,omitempty"`
	IsActive            bool              `json:"isActive"`
}

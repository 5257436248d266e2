package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memorist/memorist/internal/scheduler"
	"github.com/memorist/memorist/internal/setschedule"
)

func TestMemoryStatesRoundTrip(t *testing.T) {
	reviewed := time.Date(2026, 3, 10, 9, 30, 15, 123_000_000, time.UTC)
	states := map[string]scheduler.CardMemoryState{
		"card-1": {
			ItemID:         "card-1",
			Interval:       6,
			EaseFactor:     2.36,
			Repetitions:    2,
			NextReviewDate: reviewed.AddDate(0, 0, 6),
			LastReviewDate: reviewed,
			TotalReviews:   4,
			AverageQuality: 3.75,
			Streak:         2,
			Created:        reviewed.AddDate(0, -1, 0),
			Updated:        reviewed,
		},
	}

	raw, err := EncodeMemoryStates(states)
	require.NoError(t, err)

	decoded, err := DecodeMemoryStates(raw)
	require.NoError(t, err)

	// Millisecond components must survive the string round trip.
	assert.True(t, states["card-1"].LastReviewDate.Equal(decoded["card-1"].LastReviewDate))
	assert.Equal(t, states, decoded)
}

func TestSessionsRoundTrip(t *testing.T) {
	start := time.Date(2026, 3, 10, 20, 0, 0, 0, time.UTC)
	end := start.Add(14 * time.Minute)
	sessions := []scheduler.StudySession{
		{
			SessionID:    "session-1",
			StartTime:    start,
			EndTime:      &end,
			CardsStudied: []string{"card-1", "card-2"},
			Results: []scheduler.StudyResult{
				{ItemID: "card-1", Quality: 5, ResponseTimeMs: 2300, StudiedAt: start.Add(time.Minute)},
				{ItemID: "card-2", Quality: 2, StudiedAt: start.Add(2 * time.Minute)},
			},
			TotalCards:   2,
			CorrectCards: 1,
			DurationMs:   14 * 60 * 1000,
		},
		// An unfinished session keeps its nil end time.
		{SessionID: "session-2", StartTime: start},
	}

	raw, err := EncodeSessions(sessions)
	require.NoError(t, err)

	decoded, err := DecodeSessions(raw)
	require.NoError(t, err)

	assert.Equal(t, sessions, decoded)
	assert.Nil(t, decoded[1].EndTime)
}

func TestSetSchedulesRoundTrip(t *testing.T) {
	practiced := time.Date(2026, 3, 8, 18, 0, 0, 0, time.UTC)
	schedules := []setschedule.FlashcardSetSchedule{
		{
			SetID:             "set-1",
			PracticeFrequency: setschedule.FrequencyWeekly,
			NextPracticeDate:  practiced.AddDate(0, 0, 7),
			LastPracticed:     &practiced,
			IsActive:          true,
		},
		{
			SetID:               "set-2",
			PracticeFrequency:   setschedule.FrequencyCustom,
			CustomFrequencyDays: 3,
			NextPracticeDate:    practiced.AddDate(0, 0, 3),
		},
	}

	raw, err := EncodeSetSchedules(schedules)
	require.NoError(t, err)

	decoded, err := DecodeSetSchedules(raw)
	require.NoError(t, err)

	assert.Equal(t, schedules, decoded)
}

func TestDecodeRejectsMalformedPayloads(t *testing.T) {
	_, err := DecodeMemoryStates("{not json")
	assert.Error(t, err)

	_, err = DecodeSessions(`{"wrong": "shape"}`)
	assert.Error(t, err)
}

package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/memorist/memorist/internal/analytics"
	"github.com/memorist/memorist/internal/content"
	"github.com/memorist/memorist/internal/scheduler"
)

// StatsReport is everything the stats command renders.
type StatsReport struct {
	Stats     scheduler.StudyStats
	Summary   analytics.StudySummary
	WindowDay int
	NewCards  int
	Struggle  []scheduler.CardMemoryState
	Mastered  []scheduler.CardMemoryState
	Cards     map[string]content.Card
}

// RenderStatsReport writes the progress report.
func RenderStatsReport(w io.Writer, report StatsReport) {
	bold := color.New(color.Bold)

	_, _ = bold.Fprintln(w, "Collection")
	fmt.Fprintf(w, "  cards studied:   %d\n", report.Stats.TotalCards)
	fmt.Fprintf(w, "  new cards:       %d\n", report.NewCards)
	fmt.Fprintf(w, "  due today:       %d\n", report.Stats.DueToday)
	fmt.Fprintf(w, "  learning/mature: %d/%d\n", report.Stats.Learning, report.Stats.Mature)
	if report.Stats.TotalCards > 0 {
		fmt.Fprintf(w, "  avg ease factor: %.2f\n", report.Stats.AverageEaseFactor)
		fmt.Fprintf(w, "  avg interval:    %.1f days\n", report.Stats.AverageInterval)
		fmt.Fprintf(w, "  longest streak:  %d\n", report.Stats.LongestStreak)
	}
	fmt.Fprintln(w)

	_, _ = bold.Fprintf(w, "Last %d days\n", report.WindowDay)
	fmt.Fprintf(w, "  sessions:      %d\n", report.Summary.SessionsCount)
	fmt.Fprintf(w, "  cards studied: %d\n", report.Summary.TotalCardsStudied)
	fmt.Fprintf(w, "  accuracy:      %.1f%%\n", report.Summary.AverageAccuracy)
	fmt.Fprintf(w, "  study time:    %.1f minutes\n", report.Summary.TotalStudyMinutes)
	fmt.Fprintf(w, "  day streak:    %d\n", report.Summary.StreakDays)

	if len(report.Struggle) > 0 {
		fmt.Fprintln(w)
		_, _ = bold.Fprintln(w, "Struggling cards")
		for _, state := range report.Struggle {
			fmt.Fprintln(w, color.RedString("  %s (avg quality %.1f over %d reviews)",
				cardLabel(report.Cards, state.ItemID), state.AverageQuality, state.TotalReviews))
		}
	}

	if len(report.Mastered) > 0 {
		fmt.Fprintln(w)
		_, _ = bold.Fprintln(w, "Mastered cards")
		for _, state := range report.Mastered {
			fmt.Fprintln(w, color.GreenString("  %s (interval %d days)", cardLabel(report.Cards, state.ItemID), state.Interval))
		}
	}
}

func cardLabel(cards map[string]content.Card, itemID string) string {
	if card, ok := cards[itemID]; ok && card.Front != "" {
		return card.Front
	}
	return itemID
}

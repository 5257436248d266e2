package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/memorist/memorist/internal/content"
	"github.com/memorist/memorist/internal/scheduler"
	"github.com/memorist/memorist/internal/setschedule"
)

// RenderDueReport lists due cards (most overdue first) and set practice
// reminders.
func RenderDueReport(w io.Writer, due []scheduler.CardMemoryState, dueSets []setschedule.FlashcardSetSchedule, cards map[string]content.Card, now time.Time) {
	bold := color.New(color.Bold)

	_, _ = bold.Fprintln(w, "Cards due for review")
	if len(due) == 0 {
		fmt.Fprintln(w, "  nothing due, nice work")
	}
	for _, state := range due {
		overdueDays := int(now.Sub(state.NextReviewDate).Hours() / 24)
		fmt.Fprintf(w, "  %s (%s)\n", cardLabel(cards, state.ItemID), overdueLabel(overdueDays))
	}

	if len(dueSets) > 0 {
		fmt.Fprintln(w)
		_, _ = bold.Fprintln(w, "Sets due for practice")
		for _, schedule := range dueSets {
			fmt.Fprintf(w, "  %s (%s)\n", schedule.SetID, schedule.PracticeFrequency)
		}
	}
}

func overdueLabel(days int) string {
	switch {
	case days <= 0:
		return "due today"
	case days == 1:
		return "1 day overdue"
	default:
		return fmt.Sprintf("%d days overdue", days)
	}
}

// Package cli implements the interactive study session and the report
// rendering for the memorist command line.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/memorist/memorist/internal/content"
	"github.com/memorist/memorist/internal/scheduler"
)

// errEnd signals that the user quit the session early; it never reaches
// the command line as a failure.
var errEnd = fmt.Errorf("session ended")

// StateRepository is the slice of the persistence collaborator the study
// session needs.
type StateRepository interface {
	LoadMemoryStates(ctx context.Context) map[string]scheduler.CardMemoryState
	SaveMemoryStates(ctx context.Context, states map[string]scheduler.CardMemoryState) error
	AppendSession(ctx context.Context, session scheduler.StudySession) error
}

// StudySessionCLI runs one interactive study session: it shows card
// fronts, reveals backs, reads 0-5 quality grades and feeds each result
// through the scheduler.
type StudySessionCLI struct {
	composer     *scheduler.SessionComposer
	repository   StateRepository
	cards        map[string]content.Card
	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	bold         *color.Color
	italic       *color.Color
	now          func() time.Time
}

// NewStudySessionCLI creates a study session CLI reading from stdin and
// writing to stdout.
func NewStudySessionCLI(
	composer *scheduler.SessionComposer,
	repository StateRepository,
	cards map[string]content.Card,
) *StudySessionCLI {
	return &StudySessionCLI{
		composer:     composer,
		repository:   repository,
		cards:        cards,
		stdinReader:  bufio.NewReader(os.Stdin),
		stdoutWriter: os.Stdout,
		bold:         color.New(color.Bold),
		italic:       color.New(color.Italic),
		now:          time.Now,
	}
}

// Run composes a session from the pool and plays it through. The updated
// snapshot is persisted after every card so an interrupted session keeps
// its progress; the session record itself is persisted once at the end.
func (r *StudySessionCLI) Run(ctx context.Context, pool []string, opts scheduler.SessionOptions) error {
	states := r.repository.LoadMemoryStates(ctx)
	plan := r.composer.CreateStudySession(pool, states, opts)

	if len(plan.SessionCards) == 0 {
		fmt.Fprintln(r.stdoutWriter, "Nothing to study! No cards are due and no new cards remain.")
		return nil
	}

	fmt.Fprintf(r.stdoutWriter, "Study session: %d cards (%d review, %d new)\n",
		len(plan.SessionCards), len(plan.ReviewCards), len(plan.NewCards))
	fmt.Fprintln(r.stdoutWriter, "Press Enter to reveal the answer, grade yourself 0-5, or 'q' to stop.")
	fmt.Fprintln(r.stdoutWriter)

	session := scheduler.StudySession{
		SessionID: plan.SessionID,
		StartTime: r.now(),
	}

	for i, itemID := range plan.SessionCards {
		result, err := r.studyCard(i+1, len(plan.SessionCards), itemID)
		if err == errEnd {
			break
		}
		if err != nil {
			return err
		}

		states, err = r.composer.ProcessStudyResult(result, states)
		if err != nil {
			return fmt.Errorf("composer.ProcessStudyResult(%s) > %w", itemID, err)
		}
		if err := r.repository.SaveMemoryStates(ctx, states); err != nil {
			return fmt.Errorf("repository.SaveMemoryStates() > %w", err)
		}

		session.CardsStudied = append(session.CardsStudied, itemID)
		session.Results = append(session.Results, result)
		if result.IsCorrect() {
			session.CorrectCards++
		}
	}

	end := r.now()
	session.EndTime = &end
	session.TotalCards = len(session.CardsStudied)
	session.DurationMs = end.Sub(session.StartTime).Milliseconds()

	if err := r.repository.AppendSession(ctx, session); err != nil {
		return fmt.Errorf("repository.AppendSession() > %w", err)
	}

	fmt.Fprintln(r.stdoutWriter)
	fmt.Fprintf(r.stdoutWriter, "Session complete: %d/%d correct.\n", session.CorrectCards, session.TotalCards)
	return nil
}

func (r *StudySessionCLI) studyCard(position, total int, itemID string) (scheduler.StudyResult, error) {
	card, ok := r.cards[itemID]
	if !ok {
		// The deck changed between composition and study; fall back to the ID.
		card = content.Card{ID: itemID, Front: itemID}
	}

	fmt.Fprintf(r.stdoutWriter, "[%d/%d] ", position, total)
	_, _ = r.bold.Fprintln(r.stdoutWriter, card.Front)

	asked := r.now()
	if _, err := r.stdinReader.ReadString('\n'); err != nil {
		return scheduler.StudyResult{}, fmt.Errorf("error reading input: %w", err)
	}

	_, _ = r.italic.Fprintln(r.stdoutWriter, card.Back)

	quality, err := r.readQuality()
	if err != nil {
		return scheduler.StudyResult{}, err
	}

	answered := r.now()
	return scheduler.StudyResult{
		ItemID:         itemID,
		Quality:        quality,
		ResponseTimeMs: answered.Sub(asked).Milliseconds(),
		StudiedAt:      answered,
	}, nil
}

func (r *StudySessionCLI) readQuality() (int, error) {
	for {
		fmt.Fprint(r.stdoutWriter, "How well did you recall it? (0-5, q to stop): ")
		input, err := r.stdinReader.ReadString('\n')
		if err != nil {
			return 0, fmt.Errorf("error reading input: %w", err)
		}

		quality, err := ParseQuality(input)
		if err == errEnd {
			return 0, errEnd
		}
		if err != nil {
			fmt.Fprintln(r.stdoutWriter, err.Error())
			continue
		}
		return quality, nil
	}
}

// ParseQuality parses a 0-5 self-grade; "q" and "quit" end the session.
func ParseQuality(input string) (int, error) {
	trimmed := strings.ToLower(strings.TrimSpace(input))
	if trimmed == "q" || trimmed == "quit" {
		return 0, errEnd
	}

	quality, err := strconv.Atoi(trimmed)
	if err != nil || quality < scheduler.MinQuality || quality > scheduler.MaxQuality {
		return 0, fmt.Errorf("please enter a number between 0 and 5")
	}
	return quality, nil
}

package cli

import (
	"bufio"
	"bytes"
	"context"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memorist/memorist/internal/content"
	"github.com/memorist/memorist/internal/scheduler"
	"github.com/memorist/memorist/internal/store"
)

func newSessionCLI(t *testing.T, input string, now time.Time, repository StateRepository) (*StudySessionCLI, *bytes.Buffer) {
	t.Helper()

	clock := func() time.Time { return now }
	composer := scheduler.NewSessionComposer(
		scheduler.NewMemoryModelAt(clock),
		scheduler.NewDueSelectorAt(clock),
		rand.New(rand.NewSource(1)),
	)

	out := &bytes.Buffer{}
	return &StudySessionCLI{
		composer:   composer,
		repository: repository,
		cards: map[string]content.Card{
			"card-1": {ID: "card-1", Front: "What is a ribosome?", Back: "The cell's protein factory."},
			"card-2": {ID: "card-2", Front: "What does mitochondria produce?", Back: "ATP."},
		},
		stdinReader:  bufio.NewReader(strings.NewReader(input)),
		stdoutWriter: out,
		bold:         color.New(color.Bold),
		italic:       color.New(color.Italic),
		now:          clock,
	}, out
}

func TestStudySessionCLIRun(t *testing.T) {
	color.NoColor = true
	now := time.Date(2026, 3, 10, 20, 0, 0, 0, time.UTC)
	ctx := context.Background()
	pool := []string{"card-1", "card-2"}
	opts := scheduler.DefaultSessionOptions()

	t.Run("studies every card and persists the session", func(t *testing.T) {
		repository := store.NewRepository(store.NewMemoryKV(), nil)
		// Reveal + grade for both cards.
		sessionCLI, out := newSessionCLI(t, "\n5\n\n2\n", now, repository)

		require.NoError(t, sessionCLI.Run(ctx, pool, opts))

		states := repository.LoadMemoryStates(ctx)
		require.Len(t, states, 2)
		for _, state := range states {
			assert.Equal(t, 1, state.TotalReviews)
		}

		sessions := repository.LoadSessions(ctx)
		require.Len(t, sessions, 1)
		assert.Equal(t, 2, sessions[0].TotalCards)
		assert.Equal(t, 1, sessions[0].CorrectCards)
		require.NotNil(t, sessions[0].EndTime)

		assert.Contains(t, out.String(), "Study session: 2 cards (0 review, 2 new)")
		assert.Contains(t, out.String(), "Session complete: 1/2 correct.")
	})

	t.Run("quitting keeps the progress so far", func(t *testing.T) {
		repository := store.NewRepository(store.NewMemoryKV(), nil)
		sessionCLI, _ := newSessionCLI(t, "\n4\n\nq\n", now, repository)

		require.NoError(t, sessionCLI.Run(ctx, pool, opts))

		assert.Len(t, repository.LoadMemoryStates(ctx), 1)

		sessions := repository.LoadSessions(ctx)
		require.Len(t, sessions, 1)
		assert.Equal(t, 1, sessions[0].TotalCards)
	})

	t.Run("invalid grades are re-prompted", func(t *testing.T) {
		repository := store.NewRepository(store.NewMemoryKV(), nil)
		sessionCLI, out := newSessionCLI(t, "\nseven\n9\n3\n\nq\n", now, repository)

		require.NoError(t, sessionCLI.Run(ctx, pool, opts))

		assert.Contains(t, out.String(), "please enter a number between 0 and 5")
		assert.Len(t, repository.LoadMemoryStates(ctx), 1)
	})

	t.Run("empty pool ends immediately", func(t *testing.T) {
		repository := store.NewRepository(store.NewMemoryKV(), nil)
		sessionCLI, out := newSessionCLI(t, "", now, repository)

		require.NoError(t, sessionCLI.Run(ctx, nil, opts))

		assert.Contains(t, out.String(), "Nothing to study!")
		assert.Empty(t, repository.LoadSessions(ctx))
	})
}

func TestParseQuality(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
		wantEnd bool
	}{
		{name: "plain number", input: "4\n", want: 4},
		{name: "whitespace tolerated", input: "  5 \n", want: 5},
		{name: "zero is valid", input: "0\n", want: 0},
		{name: "quit", input: "q\n", wantEnd: true},
		{name: "quit word", input: "QUIT\n", wantEnd: true},
		{name: "out of range", input: "6\n", wantErr: true},
		{name: "negative", input: "-1\n", wantErr: true},
		{name: "not a number", input: "good\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quality, err := ParseQuality(tt.input)
			if tt.wantEnd {
				assert.Equal(t, errEnd, err)
				return
			}
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, quality)
		})
	}
}

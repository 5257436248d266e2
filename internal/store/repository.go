package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/memorist/memorist/internal/scheduler"
	"github.com/memorist/memorist/internal/setschedule"
)

const (
	memoryStatesKey = "memory_states"
	sessionsKey     = "study_sessions"
	setSchedulesKey = "set_schedules"
)

// Repository persists the scheduler's three collections through a KV
// backend using the whole-collection read-modify-write discipline. Reads
// never fail the caller: a missing key, a backend error or a corrupt
// payload all degrade to an empty collection with a logged warning.
// Writes return their error for the caller to surface; the in-memory
// computation has already succeeded by then.
type Repository struct {
	kv     KV
	logger *slog.Logger
}

// NewRepository creates a Repository. A nil logger uses slog.Default.
func NewRepository(kv KV, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{kv: kv, logger: logger}
}

// LoadMemoryStates returns the persisted snapshot, or an empty one.
func (r *Repository) LoadMemoryStates(ctx context.Context) map[string]scheduler.CardMemoryState {
	states := load(r, ctx, memoryStatesKey, DecodeMemoryStates)
	if states == nil {
		return make(map[string]scheduler.CardMemoryState)
	}
	return states
}

// SaveMemoryStates writes the full snapshot back.
func (r *Repository) SaveMemoryStates(ctx context.Context, states map[string]scheduler.CardMemoryState) error {
	return save(r, ctx, memoryStatesKey, states, EncodeMemoryStates)
}

// LoadSessions returns the persisted session history, or an empty one.
func (r *Repository) LoadSessions(ctx context.Context) []scheduler.StudySession {
	return load(r, ctx, sessionsKey, DecodeSessions)
}

// AppendSession adds one finalized session to the history.
func (r *Repository) AppendSession(ctx context.Context, session scheduler.StudySession) error {
	sessions := append(r.LoadSessions(ctx), session)
	return save(r, ctx, sessionsKey, sessions, EncodeSessions)
}

// LoadSetSchedules returns the persisted set schedules, or an empty list.
func (r *Repository) LoadSetSchedules(ctx context.Context) []setschedule.FlashcardSetSchedule {
	return load(r, ctx, setSchedulesKey, DecodeSetSchedules)
}

// SaveSetSchedules writes the full schedule collection back.
func (r *Repository) SaveSetSchedules(ctx context.Context, schedules []setschedule.FlashcardSetSchedule) error {
	return save(r, ctx, setSchedulesKey, schedules, EncodeSetSchedules)
}

func load[T any](r *Repository, ctx context.Context, key string, decode func(string) (T, error)) T {
	var empty T

	raw, ok, err := r.kv.Get(ctx, key)
	if err != nil {
		r.logger.Warn("failed to read collection, starting from empty state", "key", key, "error", err)
		return empty
	}
	if !ok {
		return empty
	}

	collection, err := decode(raw)
	if err != nil {
		r.logger.Warn("corrupt persisted collection, resetting to empty state", "key", key, "error", err)
		return empty
	}
	return collection
}

func save[T any](r *Repository, ctx context.Context, key string, collection T, encode func(T) (string, error)) error {
	raw, err := encode(collection)
	if err != nil {
		return err
	}
	if err := r.kv.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("kv.Set(%s) > %w", key, err)
	}
	return nil
}

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/memorist/memorist/internal/scheduler"
	"github.com/memorist/memorist/internal/setschedule"
	"github.com/memorist/memorist/internal/store/mock_store"
)

func TestRepositoryLoadMemoryStates(t *testing.T) {
	ctx := context.Background()

	t.Run("missing key yields empty snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		kv := mock_store.NewMockKV(ctrl)
		kv.EXPECT().Get(ctx, "memory_states").Return("", false, nil)

		states := NewRepository(kv, nil).LoadMemoryStates(ctx)

		assert.NotNil(t, states)
		assert.Empty(t, states)
	})

	t.Run("backend read failure degrades to empty snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		kv := mock_store.NewMockKV(ctrl)
		kv.EXPECT().Get(ctx, "memory_states").Return("", false, errors.New("connection reset"))

		states := NewRepository(kv, nil).LoadMemoryStates(ctx)

		assert.Empty(t, states)
	})

	t.Run("corrupt payload resets to empty snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		kv := mock_store.NewMockKV(ctrl)
		kv.EXPECT().Get(ctx, "memory_states").Return("{broken", true, nil)

		states := NewRepository(kv, nil).LoadMemoryStates(ctx)

		assert.Empty(t, states)
	})

	t.Run("valid payload loads", func(t *testing.T) {
		snapshot := map[string]scheduler.CardMemoryState{
			"card-1": {ItemID: "card-1", Interval: 6, EaseFactor: 2.5},
		}
		raw, err := EncodeMemoryStates(snapshot)
		require.NoError(t, err)

		ctrl := gomock.NewController(t)
		kv := mock_store.NewMockKV(ctrl)
		kv.EXPECT().Get(ctx, "memory_states").Return(raw, true, nil)

		states := NewRepository(kv, nil).LoadMemoryStates(ctx)

		assert.Equal(t, snapshot, states)
	})
}

func TestRepositorySaveMemoryStates(t *testing.T) {
	ctx := context.Background()

	t.Run("writes the encoded snapshot", func(t *testing.T) {
		snapshot := map[string]scheduler.CardMemoryState{"card-1": {ItemID: "card-1"}}
		raw, err := EncodeMemoryStates(snapshot)
		require.NoError(t, err)

		ctrl := gomock.NewController(t)
		kv := mock_store.NewMockKV(ctrl)
		kv.EXPECT().Set(ctx, "memory_states", raw).Return(nil)

		require.NoError(t, NewRepository(kv, nil).SaveMemoryStates(ctx, snapshot))
	})

	t.Run("surfaces write failures", func(t *testing.T) {
		wantErr := errors.New("disk full")
		ctrl := gomock.NewController(t)
		kv := mock_store.NewMockKV(ctrl)
		kv.EXPECT().Set(ctx, "memory_states", gomock.Any()).Return(wantErr)

		err := NewRepository(kv, nil).SaveMemoryStates(ctx, nil)
		assert.ErrorIs(t, err, wantErr)
	})
}

func TestRepositoryAppendSession(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(NewMemoryKV(), nil)

	start := time.Date(2026, 3, 10, 20, 0, 0, 0, time.UTC)
	end := start.Add(10 * time.Minute)

	first := scheduler.StudySession{SessionID: "a", StartTime: start, EndTime: &end}
	second := scheduler.StudySession{SessionID: "b", StartTime: start.AddDate(0, 0, 1), EndTime: &end}

	require.NoError(t, repo.AppendSession(ctx, first))
	require.NoError(t, repo.AppendSession(ctx, second))

	sessions := repo.LoadSessions(ctx)
	require.Len(t, sessions, 2)
	assert.Equal(t, "a", sessions[0].SessionID)
	assert.Equal(t, "b", sessions[1].SessionID)
}

func TestRepositorySetSchedulesRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(NewMemoryKV(), nil)

	assert.Empty(t, repo.LoadSetSchedules(ctx))

	schedules := []setschedule.FlashcardSetSchedule{
		{SetID: "set-1", PracticeFrequency: setschedule.FrequencyDaily, IsActive: true},
	}
	require.NoError(t, repo.SaveSetSchedules(ctx, schedules))
	assert.Equal(t, schedules, repo.LoadSetSchedules(ctx))
}

package setschedule

import (
	"context"
	"fmt"
	"time"
)

// ScheduleStore persists the set-schedule collection as a whole. Loads
// degrade to an empty collection instead of failing the scheduler; save
// failures are returned so the caller can log them.
type ScheduleStore interface {
	LoadSetSchedules(ctx context.Context) []FlashcardSetSchedule
	SaveSetSchedules(ctx context.Context, schedules []FlashcardSetSchedule) error
}

// Service manages set schedules through a persistence collaborator.
type Service struct {
	scheduler *SetScheduler
	store     ScheduleStore
}

// NewService creates a set-schedule service.
func NewService(scheduler *SetScheduler, store ScheduleStore) *Service {
	return &Service{scheduler: scheduler, store: store}
}

// List returns every schedule.
func (s *Service) List(ctx context.Context) []FlashcardSetSchedule {
	return s.store.LoadSetSchedules(ctx)
}

// DueForPractice returns the active schedules whose practice date has passed.
func (s *Service) DueForPractice(ctx context.Context) []FlashcardSetSchedule {
	return s.scheduler.SetsDueForPractice(s.store.LoadSetSchedules(ctx))
}

// Schedule creates or replaces the schedule for a set, activating it and
// computing its first practice date from the frequency.
func (s *Service) Schedule(ctx context.Context, setID string, frequency PracticeFrequency, customDays int) (FlashcardSetSchedule, error) {
	if !frequency.IsValid() {
		return FlashcardSetSchedule{}, fmt.Errorf("unknown practice frequency %q", frequency)
	}

	schedules := s.store.LoadSetSchedules(ctx)

	schedule := FlashcardSetSchedule{
		SetID:               setID,
		PracticeFrequency:   frequency,
		CustomFrequencyDays: customDays,
		NextPracticeDate:    s.scheduler.NextPracticeDate(frequency, customDays),
		IsActive:            true,
	}

	replaced := false
	for i := range schedules {
		if schedules[i].SetID == setID {
			schedule.LastPracticed = schedules[i].LastPracticed
			schedules[i] = schedule
			replaced = true
			break
		}
	}
	if !replaced {
		schedules = append(schedules, schedule)
	}

	if err := s.store.SaveSetSchedules(ctx, schedules); err != nil {
		return FlashcardSetSchedule{}, fmt.Errorf("store.SaveSetSchedules() > %w", err)
	}
	return schedule, nil
}

// UpdatePracticeDate records a practice pass for a set. Calling it twice
// with identical arguments leaves the schedule unchanged after the second
// call.
func (s *Service) UpdatePracticeDate(ctx context.Context, setID string, lastPracticed, nextPracticeDate time.Time) error {
	schedules := s.store.LoadSetSchedules(ctx)

	found := false
	for i := range schedules {
		if schedules[i].SetID != setID {
			continue
		}
		practiced := lastPracticed
		schedules[i].LastPracticed = &practiced
		schedules[i].NextPracticeDate = nextPracticeDate
		found = true
		break
	}
	if !found {
		return fmt.Errorf("no schedule for set %q", setID)
	}

	if err := s.store.SaveSetSchedules(ctx, schedules); err != nil {
		return fmt.Errorf("store.SaveSetSchedules() > %w", err)
	}
	return nil
}

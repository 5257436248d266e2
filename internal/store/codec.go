package store

import (
	"encoding/json"
	"fmt"

	"github.com/memorist/memorist/internal/scheduler"
	"github.com/memorist/memorist/internal/setschedule"
)

// The codec is the explicit serialization boundary: every collection is a
// single JSON document with all date fields as RFC 3339 strings, so a
// round-trip through any KV backend is lossless.

// EncodeMemoryStates serializes a memory-state snapshot.
func EncodeMemoryStates(states map[string]scheduler.CardMemoryState) (string, error) {
	return encode(states, "memory states")
}

// DecodeMemoryStates parses a memory-state snapshot.
func DecodeMemoryStates(raw string) (map[string]scheduler.CardMemoryState, error) {
	return decode[map[string]scheduler.CardMemoryState](raw, "memory states")
}

// EncodeSessions serializes the session history.
func EncodeSessions(sessions []scheduler.StudySession) (string, error) {
	return encode(sessions, "study sessions")
}

// DecodeSessions parses the session history.
func DecodeSessions(raw string) ([]scheduler.StudySession, error) {
	return decode[[]scheduler.StudySession](raw, "study sessions")
}

// EncodeSetSchedules serializes the set-schedule collection.
func EncodeSetSchedules(schedules []setschedule.FlashcardSetSchedule) (string, error) {
	return encode(schedules, "set schedules")
}

// DecodeSetSchedules parses the set-schedule collection.
func DecodeSetSchedules(raw string) ([]setschedule.FlashcardSetSchedule, error) {
	return decode[[]setschedule.FlashcardSetSchedule](raw, "set schedules")
}

func encode[T any](collection T, kind string) (string, error) {
	data, err := json.Marshal(collection)
	if err != nil {
		return "", fmt.Errorf("json.Marshal(%s) > %w", kind, err)
	}
	return string(data), nil
}

func decode[T any](raw, kind string) (T, error) {
	var collection T
	if err := json.Unmarshal([]byte(raw), &collection); err != nil {
		return collection, fmt.Errorf("json.Unmarshal(%s) > %w", kind, err)
	}
	return collection, nil
}

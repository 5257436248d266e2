// Package store is the persistence collaborator for the study scheduler:
// a string key-value contract, an ISO-8601 JSON codec for the scheduler's
// collections, and a repository that degrades to empty state on read
// failures instead of crashing the scheduler.
package store

import (
	"context"
	"sync"
)

// KV is the persistence contract: a string key-value store.
// Get reports whether the key existed; a missing key is not an error.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

//go:generate mockgen -source=store.go -destination=mock_store/mock_store.go -package=mock_store KV

// MemoryKV is an in-memory KV for tests and ephemeral sessions.
type MemoryKV struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryKV creates an empty in-memory store.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{values: make(map[string]string)}
}

func (kv *MemoryKV) Get(ctx context.Context, key string) (string, bool, error) {
	kv.mu.RLock()
	defer kv.mu.RUnlock()
	value, ok := kv.values[key]
	return value, ok, nil
}

func (kv *MemoryKV) Set(ctx context.Context, key, value string) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	kv.values[key] = value
	return nil
}

func (kv *MemoryKV) Remove(ctx context.Context, key string) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	delete(kv.values, key)
	return nil
}

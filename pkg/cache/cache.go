// Package cache provides key/value caching for the bakery app.
//
// Redis is the primary driver. When Redis is unreachable the package
// degrades to an in-process memory store so sessions and cached reads
// keep working on a single node (and in tests).
package cache

import (
	"encoding/json"
	"sync"
	"time"
)

// Store is the driver contract shared by the redis and memory backends.
type Store interface {
	// Get unmarshals the value at key into dest. Returns true on a hit.
	Get(key string, dest interface{}) bool
	Set(key string, value interface{}, ttl time.Duration) error
	Del(keys ...string) error
}

var (
	mu     sync.RWMutex
	active Store = newMemoryStore()
)

// Connect initialises the Redis driver and makes it the active store.
// On ping failure the memory store stays active and the error is returned
// so the caller can log a warning.
func Connect() error {
	rs, err := newRedisStore()
	if err != nil {
		return err
	}

	mu.Lock()
	active = rs
	mu.Unlock()
	return nil
}

// Use swaps the active store. Intended for tests.
func Use(s Store) {
	mu.Lock()
	active = s
	mu.Unlock()
}

func store() Store {
	mu.RLock()
	defer mu.RUnlock()
	return active
}

// Get retrieves a cached value by key and unmarshals into dest.
// Returns true on a cache hit, false on miss or error.
func Get(key string, dest interface{}) bool {
	return store().Get(key, dest)
}

// Set stores value under key for the given TTL.
func Set(key string, value interface{}, ttl time.Duration) error {
	return store().Set(key, value, ttl)
}

// Del removes one or more keys.
func Del(keys ...string) error {
	return store().Del(keys...)
}

// Forget is an alias for Del.
func Forget(key string) error {
	return Del(key)
}

// ── Memory driver ────────────────────────────────────────────────────────────

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

type memoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

// NewMemoryStore returns a fresh in-process store. Exported for tests.
func NewMemoryStore() Store { return newMemoryStore() }

func newMemoryStore() *memoryStore {
	return &memoryStore{entries: make(map[string]memoryEntry)}
}

func (m *memoryStore) Get(key string, dest interface{}) bool {
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok {
		return false
	}
	if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
		m.mu.Lock()
		delete(m.entries, key)
		m.mu.Unlock()
		return false
	}

	return json.Unmarshal(e.data, dest) == nil
}

func (m *memoryStore) Set(key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	entry := memoryEntry{data: data}
	if ttl > 0 {
		entry.expiresAt = time.Now().Add(ttl)
	}

	m.mu.Lock()
	m.entries[key] = entry
	m.mu.Unlock()
	return nil
}

func (m *memoryStore) Del(keys ...string) error {
	m.mu.Lock()
	for _, k := range keys {
		delete(m.entries, k)
	}
	m.mu.Unlock()
	return nil
}

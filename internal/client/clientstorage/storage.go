// Package clientstorage abstracts the browser's string-keyed local storage
// for the client-side components. Implementations are best-effort: a read
// from unavailable storage reports absence and a write is silently dropped,
// mirroring how localStorage failures are swallowed in the field.
package clientstorage

import "sync"

type Storage interface {
	// Get returns the stored value and whether it was present.
	Get(key string) (string, bool)
	// Set stores the value. Failures are swallowed.
	Set(key, value string)
	// Remove deletes the key. Removing an absent key is a no-op.
	Remove(key string)
}

// Memory is an in-process Storage, the stand-in for localStorage in tests
// and server-side rendering contexts that still want persistence within a
// process.
type Memory struct {
	mu     sync.Mutex
	values map[string]string
}

func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *Memory) Set(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
}

func (m *Memory) Remove(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
}

// Unavailable models the no-storage case: every read reports absence and
// every write is dropped.
type Unavailable struct{}

func (Unavailable) Get(string) (string, bool) { return "", false }
func (Unavailable) Set(string, string)        {}
func (Unavailable) Remove(string)             {}

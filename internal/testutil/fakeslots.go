// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"sync"
)

// FakeSlots is an in-memory implementation of storage.Slots for testing.
type FakeSlots struct {
	mu     sync.RWMutex
	values map[string]string
	writes int
	closed bool

	// Error injection for testing
	GetErr   error
	SetErr   error
	CloseErr error
}

// NewFakeSlots creates an empty FakeSlots.
func NewFakeSlots() *FakeSlots {
	return &FakeSlots{values: make(map[string]string)}
}

// Put seeds a slot without counting it as a write.
func (f *FakeSlots) Put(key, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key] = value
}

// Value returns the raw slot value.
func (f *FakeSlots) Value(key string) (string, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	v, ok := f.values[key]
	return v, ok
}

// Keys returns the number of slots present.
func (f *FakeSlots) Keys() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.values)
}

// Writes returns how many successful Set calls were made.
func (f *FakeSlots) Writes() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.writes
}

// Closed reports whether Close was called.
func (f *FakeSlots) Closed() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.closed
}

// Get implements storage.Slots.
func (f *FakeSlots) Get(ctx context.Context, key string) (string, bool, error) {
	if f.GetErr != nil {
		return "", false, f.GetErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	v, ok := f.values[key]
	return v, ok, nil
}

// Set implements storage.Slots.
func (f *FakeSlots) Set(ctx context.Context, key, value string) error {
	if f.SetErr != nil {
		return f.SetErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key] = value
	f.writes++
	return nil
}

// Close implements storage.Slots.
func (f *FakeSlots) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return f.CloseErr
}

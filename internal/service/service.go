// Package service wires slot storage, the persistence bridge and the task
// store into one session that commands and the UI operate on.
package service

import (
	"context"

	"taskmgr/internal/config"
	"taskmgr/internal/persist"
	"taskmgr/internal/storage"
	"taskmgr/internal/task"
)

// Session owns the task store for one run of the program.
// Commands never touch storage directly.
type Session struct {
	Store  *task.Store
	Bridge *persist.Bridge

	slots storage.Slots
}

// Open opens the configured slot store and loads the saved tasks.
func Open(ctx context.Context, cfg *config.Config) (*Session, error) {
	slots, err := storage.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return New(ctx, cfg, slots), nil
}

// New creates a session over an already opened slot store.
func New(ctx context.Context, cfg *config.Config, slots storage.Slots, opts ...task.Option) *Session {
	store, bridge := persist.Open(ctx, slots, cfg.Logger(), opts...)
	return &Session{Store: store, Bridge: bridge, slots: slots}
}

// SaveErr returns the error from the most recent save, if any.
func (s *Session) SaveErr() error {
	return s.Bridge.Err()
}

// Close releases the slot store.
func (s *Session) Close() error {
	return s.slots.Close()
}

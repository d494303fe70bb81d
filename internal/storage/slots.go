// Package storage provides string-keyed local slots that survive restarts.
package storage

import (
	"context"
	"fmt"
	"log/slog"

	"taskmgr/internal/config"
)

// Slots is a local key/value store of string slots.
type Slots interface {
	// Get returns the slot value and whether the slot exists.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set overwrites the slot. A write is applied entirely or not at all.
	Set(ctx context.Context, key, value string) error

	// Close releases the underlying resources.
	Close() error
}

// Open opens the slot store selected by cfg.
func Open(ctx context.Context, cfg *config.Config) (Slots, error) {
	logger := cfg.Logger()
	path := cfg.StoragePath()

	switch cfg.Backend() {
	case config.BackendSQLite:
		if err := cfg.EnsureDir(); err != nil {
			return nil, fmt.Errorf("failed to create config directory: %w", err)
		}
		logger.Debug("opening slot store", slog.String("backend", "sqlite"), slog.String("path", path))
		return OpenSQLite(ctx, path)
	case config.BackendFile:
		logger.Debug("opening slot store", slog.String("backend", "file"), slog.String("path", path))
		return OpenFile(path)
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Backend())
	}
}

// Package persist keeps the "tasks" slot synchronized with a task.Store.
package persist

import (
	"context"
	"log/slog"
	"strings"

	"taskmgr/internal/storage"
	"taskmgr/internal/task"
)

// SlotKey is the only slot read or written.
const SlotKey = "tasks"

// Load reads the persisted sequence. A missing, unreadable or unparsable
// slot yields an empty sequence. Records with blank text or a repeated id
// are dropped.
func Load(ctx context.Context, slots storage.Slots, logger *slog.Logger) []task.Task {
	raw, ok, err := slots.Get(ctx, SlotKey)
	if err != nil {
		logger.Warn("cannot read saved tasks, starting empty", slog.Any("error", err))
		return []task.Task{}
	}
	if !ok {
		logger.Debug("no saved tasks")
		return []task.Task{}
	}

	tasks, err := task.Decode([]byte(raw))
	if err != nil {
		logger.Debug("saved tasks are corrupt, starting empty", slog.Any("error", err))
		return []task.Task{}
	}
	kept := wellFormed(tasks)
	if dropped := len(tasks) - len(kept); dropped > 0 {
		logger.Debug("dropped malformed saved tasks", slog.Int("count", dropped))
	}
	logger.Debug("loaded tasks", slog.Int("count", len(kept)))
	return kept
}

// wellFormed keeps the first record for each id and skips blank text.
func wellFormed(tasks []task.Task) []task.Task {
	seen := make(map[int64]bool, len(tasks))
	kept := make([]task.Task, 0, len(tasks))
	for _, t := range tasks {
		if strings.TrimSpace(t.Text) == "" || seen[t.ID] {
			continue
		}
		seen[t.ID] = true
		kept = append(kept, t)
	}
	return kept
}

// Bridge writes the full sequence to the slot after every store change.
type Bridge struct {
	ctx    context.Context
	slots  storage.Slots
	logger *slog.Logger
	err    error
	writes int
}

// Attach subscribes a Bridge to store.
func Attach(ctx context.Context, store *task.Store, slots storage.Slots, logger *slog.Logger) *Bridge {
	b := &Bridge{ctx: ctx, slots: slots, logger: logger}
	store.Subscribe(b.save)
	return b
}

// Open loads the saved sequence, creates a Store holding it and attaches a
// Bridge to it.
func Open(ctx context.Context, slots storage.Slots, logger *slog.Logger, opts ...task.Option) (*task.Store, *Bridge) {
	store := task.NewStore(Load(ctx, slots, logger), opts...)
	return store, Attach(ctx, store, slots, logger)
}

// Err returns the error from the most recent write, or nil if it succeeded.
func (b *Bridge) Err() error {
	return b.err
}

// Writes returns the number of successful writes.
func (b *Bridge) Writes() int {
	return b.writes
}

func (b *Bridge) save(tasks []task.Task) {
	data, err := task.Encode(tasks)
	if err == nil {
		err = b.slots.Set(b.ctx, SlotKey, string(data))
	}
	b.err = err
	if err != nil {
		b.logger.Warn("failed to save tasks", slog.Any("error", err))
		return
	}
	b.writes++
	b.logger.Debug("saved tasks", slog.Int("count", len(tasks)))
}

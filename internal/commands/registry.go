package commands

import (
	"fmt"
	"slices"
	"sync"
)

// Registry maps command names and aliases to commands.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]Command
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Command)}
}

// Register makes c reachable under its name and every alias. Nothing is
// added when any of them is taken.
func (r *Registry) Register(c Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := append([]string{c.Name()}, c.Aliases()...)
	for _, n := range names {
		if prev, taken := r.byName[n]; taken {
			return fmt.Errorf("%s: name %q already used by %s", c.Name(), n, prev.Name())
		}
	}
	for _, n := range names {
		r.byName[n] = c
	}
	return nil
}

// Find returns the command registered under name or alias.
func (r *Registry) Find(name string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byName[name]
	return c, ok
}

// All lists each command once, ordered by primary name.
func (r *Registry) All() []Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	primary := make(map[string]Command)
	for _, c := range r.byName {
		primary[c.Name()] = c
	}

	names := make([]string, 0, len(primary))
	for name := range primary {
		names = append(names, name)
	}
	slices.Sort(names)

	out := make([]Command, 0, len(primary))
	for _, name := range names {
		out = append(out, primary[name])
	}
	return out
}

// DefaultRegistry holds the taskmgr commands.
var DefaultRegistry = NewRegistry()

// Register adds c to DefaultRegistry. Command files call it from init.
func Register(c Command) {
	if err := DefaultRegistry.Register(c); err != nil {
		panic(err)
	}
}

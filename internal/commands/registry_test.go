package commands_test

import (
	"testing"

	"taskmgr/internal/commands"
)

func TestRegistry_FindByAlias(t *testing.T) {
	r := commands.NewRegistry()
	if err := r.Register(&commands.RmCmd{}); err != nil {
		t.Fatalf("register: %v", err)
	}

	for _, name := range []string{"rm", "delete"} {
		c, ok := r.Find(name)
		if !ok || c.Name() != "rm" {
			t.Errorf("Find(%q) = %v, %v", name, c, ok)
		}
	}
}

func TestRegistry_ConflictAddsNothing(t *testing.T) {
	r := commands.NewRegistry()
	if err := r.Register(&commands.ToggleCmd{}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := r.Register(&commands.ToggleCmd{}); err == nil {
		t.Fatal("expected error for duplicate name")
	}
	if got := len(r.All()); got != 1 {
		t.Errorf("expected 1 command, got %d", got)
	}
}

func TestRegistry_AllSortedOncePerCommand(t *testing.T) {
	var names []string
	for _, c := range commands.DefaultRegistry.All() {
		names = append(names, c.Name())
	}
	want := []string{"add", "config", "help", "list", "rm", "toggle", "ui", "version"}
	if len(names) != len(want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("expected %v, got %v", want, names)
			break
		}
	}
}

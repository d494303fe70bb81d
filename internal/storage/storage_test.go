package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"taskmgr/internal/config"
	"taskmgr/internal/storage"
)

func backends(t *testing.T) map[string]storage.Slots {
	t.Helper()
	ctx := context.Background()

	sq, err := storage.OpenSQLite(ctx, filepath.Join(t.TempDir(), "taskmgr.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { sq.Close() })

	fs, err := storage.OpenFile(filepath.Join(t.TempDir(), "slots"))
	if err != nil {
		t.Fatalf("open file: %v", err)
	}

	return map[string]storage.Slots{"sqlite": sq, "file": fs}
}

func TestSlots_GetMissing(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, ok, err := s.Get(context.Background(), "tasks")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ok {
				t.Error("expected missing slot")
			}
		})
	}
}

func TestSlots_SetOverwrites(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			if err := s.Set(ctx, "tasks", `[{"id":1,"text":"a","completed":false}]`); err != nil {
				t.Fatalf("set: %v", err)
			}
			if err := s.Set(ctx, "tasks", `[]`); err != nil {
				t.Fatalf("set: %v", err)
			}
			got, ok, err := s.Get(ctx, "tasks")
			if err != nil || !ok {
				t.Fatalf("get: %q %v %v", got, ok, err)
			}
			if got != "[]" {
				t.Errorf("expected [], got %q", got)
			}
		})
	}
}

func TestSQLite_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "taskmgr.db")

	s, err := storage.OpenSQLite(ctx, path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.Set(ctx, "tasks", "payload"); err != nil {
		t.Fatalf("set: %v", err)
	}
	s.Close()

	s, err = storage.OpenSQLite(ctx, path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	got, ok, err := s.Get(ctx, "tasks")
	if err != nil || !ok || got != "payload" {
		t.Errorf("expected payload, got %q %v %v", got, ok, err)
	}
}

func TestFile_RejectsPathKeys(t *testing.T) {
	fs, err := storage.OpenFile(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := fs.Set(context.Background(), "../escape", "x"); err == nil {
		t.Error("expected error for key with separator")
	}
}

func TestFile_NoTempFilesLeft(t *testing.T) {
	dir := t.TempDir()
	fs, err := storage.OpenFile(dir)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := fs.Set(context.Background(), "tasks", "[]"); err != nil {
		t.Fatalf("set: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "tasks.json" {
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("expected only tasks.json, got %v", names)
	}
}

func TestFile_ReplaceWritesWholeValue(t *testing.T) {
	dir := t.TempDir()
	fs, err := storage.OpenFile(dir)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	ctx := context.Background()
	long := `[{"id":1,"text":"Buy milk","completed":false},{"id":2,"text":"Walk dog","completed":true}]`
	for _, value := range []string{long, "[]", long} {
		if err := fs.Set(ctx, "tasks", value); err != nil {
			t.Fatalf("set: %v", err)
		}
		data, err := os.ReadFile(filepath.Join(dir, "tasks.json"))
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		if string(data) != value {
			t.Errorf("expected %q on disk, got %q", value, data)
		}
	}
}

func TestOpen_SelectsBackend(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{Dir: dir, Settings: config.DefaultSettings()}
	cfg.Settings.Storage.Backend = config.BackendFile

	s, err := storage.Open(context.Background(), cfg)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()
	if _, ok := s.(*storage.File); !ok {
		t.Errorf("expected *storage.File, got %T", s)
	}

	cfg.Settings.Storage.Backend = "bogus"
	if _, err := storage.Open(context.Background(), cfg); err == nil {
		t.Error("expected error for unknown backend")
	}
}

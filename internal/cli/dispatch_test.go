package cli_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"taskmgr/internal/cli"
	"taskmgr/internal/commands"
	"taskmgr/internal/config"
	"taskmgr/internal/exitcode"
	"taskmgr/internal/service"
	"taskmgr/internal/storage"
	"taskmgr/internal/testutil"
)

// testFactory creates a session factory backed by the given FakeSlots.
func testFactory(slots *testutil.FakeSlots) cli.SessionFactory {
	return func(ctx context.Context, cfg *config.Config) (*service.Session, error) {
		return service.New(ctx, cfg, slots), nil
	}
}

func run(t *testing.T, d *cli.Dispatcher, args ...string) (stdout, stderr string, code int) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	code = d.Run(context.Background(), args, &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), code
}

func TestDispatcher_UnknownCommand(t *testing.T) {
	d := cli.NewDispatcher(commands.DefaultRegistry, testFactory(testutil.NewFakeSlots()))

	_, stderr, code := run(t, d, "unknowncmd")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown command: unknowncmd\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_FlagBeforeCommand(t *testing.T) {
	d := cli.NewDispatcher(commands.DefaultRegistry, testFactory(testutil.NewFakeSlots()))

	_, stderr, code := run(t, d, "--quiet")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown command: --quiet\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_HelpCommand(t *testing.T) {
	d := cli.NewDispatcher(commands.DefaultRegistry, testFactory(testutil.NewFakeSlots()))

	stdout, stderr, code := run(t, d, "help", "--config", t.TempDir())

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if !strings.Contains(stdout, "Usage:") {
		t.Error("expected help output to contain 'Usage:'")
	}
}

func TestDispatcher_VersionCommand(t *testing.T) {
	d := cli.NewDispatcher(commands.DefaultRegistry, testFactory(testutil.NewFakeSlots()))

	stdout, _, code := run(t, d, "version", "--config", t.TempDir())

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "taskmgr 0.1.0\n" {
		t.Errorf("expected 'taskmgr 0.1.0\\n', got %q", stdout)
	}
}

func TestDispatcher_UnknownFlag(t *testing.T) {
	d := cli.NewDispatcher(commands.DefaultRegistry, testFactory(testutil.NewFakeSlots()))

	_, stderr, code := run(t, d, "help", "--unknown")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown flag: -unknown\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_NoArgsListsTasks(t *testing.T) {
	slots := testutil.NewFakeSlots()
	slots.Put("tasks", `[{"id":1,"text":"Buy milk","completed":false}]`)
	d := cli.NewDispatcher(commands.DefaultRegistry, testFactory(slots))

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	stdout, stderr, code := run(t, d)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d (stderr %q)", exitcode.Success, code, stderr)
	}
	if stdout != "   1  [ ] Buy milk\n" {
		t.Errorf("unexpected output: %q", stdout)
	}
	if !slots.Closed() {
		t.Error("expected slot store closed after the command")
	}
}

func TestDispatcher_AliasResolves(t *testing.T) {
	slots := testutil.NewFakeSlots()
	d := cli.NewDispatcher(commands.DefaultRegistry, testFactory(slots))
	dir := t.TempDir()

	if _, stderr, code := run(t, d, "add", "--config", dir, "Buy", "milk"); code != exitcode.Success {
		t.Fatalf("add failed: %d %q", code, stderr)
	}
	if _, stderr, code := run(t, d, "done", "--config", dir, "1"); code != exitcode.Success {
		t.Fatalf("done failed: %d %q", code, stderr)
	}

	raw, _ := slots.Value("tasks")
	if !strings.Contains(raw, `"text":"Buy milk","completed":true`) {
		t.Errorf("unexpected slot: %s", raw)
	}
}

func TestDispatcher_DashTextAfterTerminator(t *testing.T) {
	slots := testutil.NewFakeSlots()
	d := cli.NewDispatcher(commands.DefaultRegistry, testFactory(slots))
	dir := t.TempDir()

	for _, text := range []string{"-5 degrees outside", "- buy milk"} {
		if _, stderr, code := run(t, d, "add", "--config", dir, "--quiet", "--", text); code != exitcode.Success {
			t.Fatalf("add %q failed: %d %q", text, code, stderr)
		}
	}

	raw, _ := slots.Value("tasks")
	for _, want := range []string{`"text":"-5 degrees outside"`, `"text":"- buy milk"`} {
		if !strings.Contains(raw, want) {
			t.Errorf("expected %s in slot, got %s", want, raw)
		}
	}

	// Without the terminator a dash argument is still a flag
	_, stderr, code := run(t, d, "add", "--config", dir, "-5 degrees outside")
	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if !strings.HasPrefix(stderr, "error: unknown flag: ") {
		t.Errorf("unexpected stderr: %q", stderr)
	}
}

func TestDispatcher_FactoryError(t *testing.T) {
	failing := func(ctx context.Context, cfg *config.Config) (*service.Session, error) {
		return nil, errors.New("database is locked")
	}
	d := cli.NewDispatcher(commands.DefaultRegistry, failing)

	_, stderr, code := run(t, d, "list", "--config", t.TempDir())

	if code != exitcode.StorageError {
		t.Errorf("expected exit code %d, got %d", exitcode.StorageError, code)
	}
	if stderr != "error: storage error: database is locked\n" {
		t.Errorf("unexpected stderr: %q", stderr)
	}
}

func TestDispatcher_BadConfigFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("storage: [unclosed\n"), 0600); err != nil {
		t.Fatalf("failed to write config.yaml: %v", err)
	}
	d := cli.NewDispatcher(commands.DefaultRegistry, testFactory(testutil.NewFakeSlots()))

	_, stderr, code := run(t, d, "list", "--config", dir)

	if code != exitcode.ConfigError {
		t.Errorf("expected exit code %d, got %d", exitcode.ConfigError, code)
	}
	if !strings.HasPrefix(stderr, "error: config error: ") {
		t.Errorf("unexpected stderr: %q", stderr)
	}
}

// Exercises the default factory against a real SQLite file.
func TestDispatcher_DefaultFactoryPersists(t *testing.T) {
	dir := t.TempDir()
	d := cli.NewDispatcher(commands.DefaultRegistry, nil)

	if _, stderr, code := run(t, d, "add", "--config", dir, "--quiet", "Buy milk"); code != exitcode.Success {
		t.Fatalf("add failed: %d %q", code, stderr)
	}
	if _, stderr, code := run(t, d, "add", "--config", dir, "--quiet", "Walk dog"); code != exitcode.Success {
		t.Fatalf("add failed: %d %q", code, stderr)
	}
	if _, stderr, code := run(t, d, "toggle", "--config", dir, "--quiet", "2"); code != exitcode.Success {
		t.Fatalf("toggle failed: %d %q", code, stderr)
	}

	stdout, _, code := run(t, d, "list", "--config", dir)
	if code != exitcode.Success {
		t.Fatalf("list failed: %d", code)
	}
	expected := "   1  [ ] Buy milk\n   2  [x] Walk dog\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}

	if _, err := os.Stat(filepath.Join(dir, config.DatabaseFile)); err != nil {
		t.Errorf("expected database file: %v", err)
	}

	slots, err := storage.OpenSQLite(context.Background(), filepath.Join(dir, config.DatabaseFile))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer slots.Close()
	if _, ok, _ := slots.Get(context.Background(), "tasks"); !ok {
		t.Error("expected tasks slot in database")
	}
}

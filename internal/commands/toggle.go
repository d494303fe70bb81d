package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"taskmgr/internal/config"
	"taskmgr/internal/exitcode"
	"taskmgr/internal/service"
	"taskmgr/internal/task"
)

func init() {
	Register(&ToggleCmd{})
}

// ToggleCmd implements the toggle command.
type ToggleCmd struct {
	filter string
}

// SetFilter sets the filter row numbers refer to (for testing).
func (c *ToggleCmd) SetFilter(name string) {
	c.filter = name
}

func (c *ToggleCmd) Name() string      { return "toggle" }
func (c *ToggleCmd) Aliases() []string { return []string{"done"} }
func (c *ToggleCmd) Synopsis() string  { return "Mark a task completed or active again" }
func (c *ToggleCmd) Usage() string     { return "taskmgr toggle [--filter <f>] <n|#id>" }
func (c *ToggleCmd) NeedsStore() bool  { return true }

func (c *ToggleCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.filter, "filter", "all", "")
	fs.StringVar(&c.filter, "f", "all", "")
}

func (c *ToggleCmd) Run(ctx context.Context, cfg *config.Config, sess *service.Session, args []string, out, errOut io.Writer) int {
	return runOnRef(cfg, sess, c.filter, args, sess.Store.Toggle, "toggled task", out, errOut)
}

// runOnRef is the shared implementation for toggle and rm.
func runOnRef(cfg *config.Config, sess *service.Session, filterName string, args []string, apply func(int64) bool, logMsg string, out, errOut io.Writer) int {
	ref, err := ParseTaskRef(args)
	if err != nil {
		if err == ErrTaskRefRequired {
			fmt.Fprintln(errOut, "error: task reference required")
		} else {
			fmt.Fprintf(errOut, "error: %v\n", err)
		}
		return exitcode.UserError
	}

	filter, err := task.ParseFilter(filterName)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	id, err := ResolveTaskRef(sess.Store.Tasks(), filter, ref)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	// Unknown ids are a no-op
	if !apply(id) {
		cfg.Logger().Debug("no task with id", slog.Int64("id", id))
		return exitcode.Success
	}

	if err := sess.SaveErr(); err != nil {
		fmt.Fprintf(errOut, "error: failed to save tasks: %v\n", err)
		return exitcode.StorageError
	}

	cfg.Logger().Debug(logMsg, slog.Int64("id", id))
	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

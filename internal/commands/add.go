package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"taskmgr/internal/config"
	"taskmgr/internal/exitcode"
	"taskmgr/internal/service"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct{}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return []string{"create"} }
func (c *AddCmd) Synopsis() string  { return "Add a task" }
func (c *AddCmd) Usage() string     { return "taskmgr add [--] <text...>" }
func (c *AddCmd) NeedsStore() bool  { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, sess *service.Session, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: task text required")
		return exitcode.UserError
	}

	// Blank text is ignored without feedback
	added, ok := sess.Store.Add(strings.Join(args, " "))
	if !ok {
		cfg.Logger().Debug("ignored blank task text")
		return exitcode.Success
	}

	if err := sess.SaveErr(); err != nil {
		fmt.Fprintf(errOut, "error: failed to save tasks: %v\n", err)
		return exitcode.StorageError
	}

	cfg.Logger().Debug("added task", slog.Int64("id", added.ID))
	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

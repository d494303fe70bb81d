package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskmgr/internal/config"
	"taskmgr/internal/exitcode"
	"taskmgr/internal/service"
	"taskmgr/internal/ui"
)

func init() {
	Register(&UICmd{})
}

// UICmd implements the ui command.
type UICmd struct{}

func (c *UICmd) Name() string      { return "ui" }
func (c *UICmd) Aliases() []string { return []string{"tui"} }
func (c *UICmd) Synopsis() string  { return "Open the interactive task list" }
func (c *UICmd) Usage() string     { return "taskmgr ui" }
func (c *UICmd) NeedsStore() bool  { return true }

func (c *UICmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *UICmd) Run(ctx context.Context, cfg *config.Config, sess *service.Session, args []string, out, errOut io.Writer) int {
	return uiExitCode(ctx, ui.Run(ctx, cfg, sess), errOut)
}

// uiExitCode maps the program result to an exit code. Cancellation by a
// signal ends the session normally.
func uiExitCode(ctx context.Context, err error, errOut io.Writer) int {
	if err == nil || ctx.Err() != nil {
		return exitcode.Success
	}
	fmt.Fprintf(errOut, "error: %v\n", err)
	return exitcode.UserError
}

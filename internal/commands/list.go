package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskmgr/internal/config"
	"taskmgr/internal/exitcode"
	"taskmgr/internal/output"
	"taskmgr/internal/service"
	"taskmgr/internal/task"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
// Handles both `taskmgr` (no args) and `taskmgr list --filter <f>`.
type ListCmd struct {
	filter  string
	showIDs bool
	summary bool
}

// SetFilter sets the filter name (for testing).
func (c *ListCmd) SetFilter(name string) {
	c.filter = name
}

// SetShowIDs toggles the id column (for testing).
func (c *ListCmd) SetShowIDs(show bool) {
	c.showIDs = show
}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List tasks" }
func (c *ListCmd) Usage() string {
	return "taskmgr list [--filter all|active|completed] [--ids] [--summary]"
}
func (c *ListCmd) NeedsStore() bool { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.filter, "filter", "all", "")
	fs.StringVar(&c.filter, "f", "all", "")
	fs.BoolVar(&c.showIDs, "ids", false, "")
	fs.BoolVar(&c.summary, "summary", false, "")
}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, sess *service.Session, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	filter, err := task.ParseFilter(c.filter)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	all := sess.Store.Tasks()
	visible := task.Visible(all, filter)

	if len(visible) == 0 {
		if !cfg.Quiet {
			output.FormatPlaceholder(out, cfg.UI().EmptyMessage)
		}
	}

	for i, t := range visible {
		if c.showIDs {
			output.FormatTaskWithID(out, i+1, t)
		} else {
			output.FormatTask(out, i+1, t)
		}
	}

	if c.summary && !cfg.Quiet {
		output.FormatSummary(out, all)
	}
	return exitcode.Success
}

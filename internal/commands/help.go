package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskmgr/internal/config"
	"taskmgr/internal/exitcode"
	"taskmgr/internal/service"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "taskmgr help" }
func (c *HelpCmd) NeedsStore() bool  { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, sess *service.Session, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	fmt.Fprintln(out, "\nCommands:")
	for _, cmd := range DefaultRegistry.All() {
		fmt.Fprintf(out, "  %-8s %s\n", cmd.Name(), cmd.Synopsis())
	}
	return exitcode.Success
}

const helpText = `Usage:
  taskmgr                                            List all tasks
  taskmgr list [common flags] [--filter <f>] [--ids] [--summary]
  taskmgr add [common flags] <text...>
  taskmgr toggle [common flags] [--filter <f>] <n|#id>
  taskmgr done [common flags] [--filter <f>] <n|#id>
  taskmgr rm [common flags] [--filter <f>] <n|#id>
  taskmgr ui [common flags]                          Interactive task list
  taskmgr config [common flags] [show|path]
  taskmgr help
  taskmgr version

Filters: all, active, completed. Row numbers <n> count the tasks shown by
"taskmgr list" with the same filter; #id names a task by its id (see --ids).

Common flags:
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`

package commands

import (
	"context"
	"flag"
	"io"

	"taskmgr/internal/config"
	"taskmgr/internal/service"
)

func init() {
	Register(&RmCmd{})
}

// RmCmd implements the rm command. Deletion is permanent.
type RmCmd struct {
	filter string
}

// SetFilter sets the filter row numbers refer to (for testing).
func (c *RmCmd) SetFilter(name string) {
	c.filter = name
}

func (c *RmCmd) Name() string      { return "rm" }
func (c *RmCmd) Aliases() []string { return []string{"delete"} }
func (c *RmCmd) Synopsis() string  { return "Delete a task" }
func (c *RmCmd) Usage() string     { return "taskmgr rm [--filter <f>] <n|#id>" }
func (c *RmCmd) NeedsStore() bool  { return true }

func (c *RmCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.filter, "filter", "all", "")
	fs.StringVar(&c.filter, "f", "all", "")
}

func (c *RmCmd) Run(ctx context.Context, cfg *config.Config, sess *service.Session, args []string, out, errOut io.Writer) int {
	return runOnRef(cfg, sess, c.filter, args, sess.Store.Delete, "deleted task", out, errOut)
}

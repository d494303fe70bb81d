// Package commands implements the taskmgr subcommands.
package commands

import (
	"context"
	"flag"
	"io"

	"taskmgr/internal/config"
	"taskmgr/internal/service"
)

// Command is one taskmgr subcommand.
type Command interface {
	Name() string
	Aliases() []string

	// Synopsis and Usage feed the help listing.
	Synopsis() string
	Usage() string

	// NeedsStore reports whether Run gets a session over the saved tasks.
	// When false, sess is nil.
	NeedsStore() bool

	// RegisterFlags adds the command's own flags next to --config,
	// --quiet and --debug.
	RegisterFlags(fs *flag.FlagSet)

	// Run receives the positional arguments left after flag parsing and
	// returns the process exit code.
	Run(ctx context.Context, cfg *config.Config, sess *service.Session, args []string, out, errOut io.Writer) int
}

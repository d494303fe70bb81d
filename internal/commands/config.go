package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"taskmgr/internal/config"
	"taskmgr/internal/exitcode"
	"taskmgr/internal/service"
)

func init() {
	Register(&ConfigCmd{})
}

// ConfigCmd implements the config command.
type ConfigCmd struct{}

func (c *ConfigCmd) Name() string      { return "config" }
func (c *ConfigCmd) Aliases() []string { return nil }
func (c *ConfigCmd) Synopsis() string  { return "Show configuration" }
func (c *ConfigCmd) Usage() string     { return "taskmgr config [show|path]" }
func (c *ConfigCmd) NeedsStore() bool  { return false }

func (c *ConfigCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ConfigCmd) Run(ctx context.Context, cfg *config.Config, sess *service.Session, args []string, out, errOut io.Writer) int {
	sub := "show"
	if len(args) > 0 {
		sub = args[0]
	}

	switch sub {
	case "show":
		settings := cfg.Settings
		settings.Storage.Backend = cfg.Backend()
		settings.Storage.Path = cfg.StoragePath()
		settings.UI = cfg.UI()

		data, err := yaml.Marshal(settings)
		if err != nil {
			fmt.Fprintf(errOut, "error: failed to marshal config: %v\n", err)
			return exitcode.ConfigError
		}
		fmt.Fprint(out, string(data))
	case "path":
		fmt.Fprintf(out, "config:  %s\n", cfg.SettingsPath())
		fmt.Fprintf(out, "storage: %s\n", cfg.StoragePath())
	default:
		fmt.Fprintf(errOut, "error: unknown config command: %s\n", sub)
		return exitcode.UserError
	}
	return exitcode.Success
}

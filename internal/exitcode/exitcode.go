// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, bad reference, bad filter).
	UserError = 1

	// ConfigError indicates an unreadable or invalid config.yaml.
	ConfigError = 2

	// StorageError indicates the slot store could not be opened or written.
	StorageError = 3
)

package cli

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// registerPersistentFlags adds the flags shared by every command and applies
// them before any command runs.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the command context and reachable from every
// command through loggerFromContext.
func (c *CLI) registerPersistentFlags(root *cobra.Command) {
	var verbose bool
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		level := log.InfoLevel
		if verbose {
			level = log.DebugLevel
		}
		c.SetLogLevel(level)
		cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		return nil
	}
}

package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/treeseed/pkg/buildinfo"
	"github.com/matzehuels/treeseed/pkg/observability"
)

// appName is the application name used for display.
const appName = "treeseed"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Out receives the confirmation line.
	Out io.Writer

	// Err receives logs and the spinner animation.
	Err io.Writer
}

// New creates a new CLI instance writing results to out and logs to errOut.
func New(out, errOut io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(errOut, level),
		Out:    out,
		Err:    errOut,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// The root command itself generates a tree.
func (c *CLI) RootCommand() *cobra.Command {
	root := c.generateCommand()
	root.Version = buildinfo.Version
	root.SilenceUsage = true
	root.SilenceErrors = true
	root.SetVersionTemplate(buildinfo.Template())
	root.SetOut(c.Out)
	root.SetErr(c.Err)

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		observability.SetGeneratorHooks(logHooks{logger: c.Logger})
		cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		return nil
	}

	root.AddCommand(c.verifyCommand())
	root.AddCommand(c.completionCommand())

	return root
}

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/chartpress/pkg/buildinfo"
	"github.com/matzehuels/chartpress/pkg/chart"
	"github.com/matzehuels/chartpress/pkg/config"
	"github.com/matzehuels/chartpress/pkg/document"
	"github.com/matzehuels/chartpress/pkg/fonts"
	"github.com/matzehuels/chartpress/pkg/pipeline"
	"github.com/matzehuels/chartpress/pkg/render/sink"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "chartpress"

	// stdioPath names standard input or output in file arguments.
	stdioPath = "-"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// stdin is read when a command is given "-" as its input file.
	stdin io.Reader
	// stdout receives binary output written to "-".
	stdout io.Writer
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		stdin:  os.Stdin,
		stdout: os.Stdout,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Chartpress renders chart descriptions to PNG and PDF",
		Long:         `Chartpress renders JSON chart descriptions (radar, gauge, bar, pie) to PNG images and single-page PDF documents, either as an HTTP service or from the command line.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	c.registerPersistentFlags(root)

	root.AddCommand(c.serveCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner wires fonts, render engine and document assembler from cfg.
func (c *CLI) newRunner(cfg config.Config) (*pipeline.Runner, error) {
	fs, err := fonts.Load(fonts.Options{Regular: cfg.Render.FontRegular, Bold: cfg.Render.FontBold})
	if err != nil {
		return nil, fmt.Errorf("load fonts: %w", err)
	}
	c.Logger.Debug("fonts loaded", "regular", fs.RegularName, "bold", fs.BoldName)

	engine := sink.NewEngine(fs, sink.WithTimeout(cfg.Render.Timeout))
	runner := pipeline.NewRunner(engine, document.NewAssembler(cfg.Document), c.Logger)
	runner.Validator = chart.Validator{MaxDimension: cfg.Render.MaxDimension}
	return runner, nil
}

// =============================================================================
// Input Helpers
// =============================================================================

// readRequest decodes a request body from path, or from stdin when path is "-".
func (c *CLI) readRequest(path string) (pipeline.Request, error) {
	var req pipeline.Request

	r := c.stdin
	if path != stdioPath {
		f, err := os.Open(path)
		if err != nil {
			return req, err
		}
		defer f.Close()
		r = f
	}
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return req, fmt.Errorf("decode request %s: %w", path, err)
	}
	return req, nil
}

// Package cli implements the cncutil command-line interface.
//
// This package provides commands for rewriting CNC program files (conditional
// Y-offset plus tool-block sorting), reporting coordinate extrema, browsing
// tool blocks interactively, and serving the same pipeline over HTTP. The CLI
// is built using cobra and supports verbose logging via the charmbracelet/log
// library.
//
// # Commands
//
// The main commands are:
//   - sort: Apply the Y-offset rule and emit tool blocks in ascending order
//   - extrema: Report x_min/x_max/y_min/y_max for a program
//   - inspect: Browse a program's tool blocks in an interactive table
//   - serve: Expose the pipeline as an HTTP API
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger is
// held on the CLI struct and shared by every command.
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/adamValent/CNC-code-utility/pkg/buildinfo"
	"github.com/adamValent/CNC-code-utility/pkg/config"
	cncerrors "github.com/adamValent/CNC-code-utility/pkg/errors"
	"github.com/adamValent/CNC-code-utility/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display and completions.
	appName = "cncutil"

	// defaultOutput is where the sort command writes when no -o is given,
	// matching the machine shop's established convention.
	defaultOutput = "cnc.txt"
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

	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "cncutil rewrites and analyzes CNC machine programs",
		Long:         `cncutil is a CLI tool for CNC machine programs: it applies the conditional Y-offset rule, regroups and sorts tool blocks by tool number, and reports coordinate extrema.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default cncutil.toml if present)")

	// Register all subcommands
	root.AddCommand(c.sortCommand())
	root.AddCommand(c.extremaCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Config & Runner
// =============================================================================

// loadConfig resolves the configuration from --config or cncutil.toml.
func (c *CLI) loadConfig() (config.Config, error) {
	return config.Resolve(c.configPath)
}

// pipelineOptions converts a config into pipeline options.
func pipelineOptions(cfg config.Config) pipeline.Options {
	return pipeline.Options{
		Threshold: cfg.Offset.Threshold,
		Shift:     cfg.Offset.Shift,
	}
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}

// =============================================================================
// I/O Helpers
// =============================================================================

// openInput opens the program file, mapping a missing file to the structured
// FILE_NOT_FOUND code so the caller exits non-zero with a clear message.
func openInput(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, cncerrors.Wrap(cncerrors.ErrCodeFileNotFound, err, "cannot open %s", path)
		}
		return nil, cncerrors.Wrap(cncerrors.ErrCodeInvalidInput, err, "cannot read %s", path)
	}
	return f, nil
}

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is "-", it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

// Package cli implements the d2color command line: flag parsing into a
// validated Config, logger setup, and the load → color → encode run.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// ExitError carries the process exit code for a failure.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Output formats.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Config is the validated command-line configuration.
type Config struct {
	// Input is a .mtx, .yaml/.yml or .json pattern file; "-" reads YAML/JSON from stdin.
	Input string
	// Stencil, when set, generates the pattern instead of reading Input.
	Stencil string
	// Format is FormatYAML or FormatJSON.
	Format string
	// Seeds controls whether seed vectors are written.
	Seeds bool
	// Workers is the distance-2 expansion goroutine count.
	Workers int
	// LogLevel is one of debug, info, warn, error.
	LogLevel string
	// LogFormat is text or json.
	LogFormat string
}

// Parse processes command-line arguments. It returns the Config, whether the
// program should exit cleanly (help or nothing to do), or an *ExitError.
func Parse(args []string, output io.Writer) (*Config, bool, error) {
	flagSet := flag.NewFlagSet("d2color", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
d2color - distance-2 coloring and seed vectors for sparse Jacobians.

Usage:
  d2color [options] [PATTERN_PATH]

Arguments:
  PATTERN_PATH
    Matrix Market (.mtx) file, or a YAML/JSON document with
    n_dofs, row_ptr and col_idx. Use "-" for YAML/JSON on stdin.

Stencils (-stencil):
  diag:N  tridiag:N  banded:N:W  grid:RxC  grid8:RxC  random:N:P:SEED

Options:
`)
		flagSet.PrintDefaults()
	}

	stencilFlag := flagSet.String("stencil", "", "Generate the pattern from a stencil spec instead of reading a file.")
	formatFlag := flagSet.String("format", FormatYAML, "Output format. Options: 'yaml' or 'json'.")
	seedsFlag := flagSet.Bool("seeds", true, "Write the seed vectors.")
	workersFlag := flagSet.Int("workers", 1, "Goroutines for the distance-2 expansion.")
	logLevelFlag := flagSet.String("log-level", "info", "Logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	cfg := &Config{
		Stencil:   *stencilFlag,
		Format:    strings.ToLower(*formatFlag),
		Seeds:     *seedsFlag,
		Workers:   *workersFlag,
		LogLevel:  strings.ToLower(*logLevelFlag),
		LogFormat: strings.ToLower(*logFormatFlag),
	}
	if flagSet.NArg() > 0 {
		cfg.Input = flagSet.Arg(0)
	}

	if cfg.Input == "" && cfg.Stencil == "" {
		flagSet.Usage()
		return nil, true, nil
	}
	if cfg.Input != "" && cfg.Stencil != "" {
		return nil, false, &ExitError{Code: 2, Message: "give either PATTERN_PATH or -stencil, not both"}
	}
	if err := cfg.validate(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return cfg, false, nil
}

func (c *Config) validate() error {
	switch c.Format {
	case FormatYAML, FormatJSON:
	default:
		return fmt.Errorf("invalid format %q: must be 'yaml' or 'json'", c.Format)
	}
	if c.Workers < 1 {
		return fmt.Errorf("invalid workers %d: must be ≥ 1", c.Workers)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", c.LogFormat)
	}

	return nil
}

func parseLevel(s string) (slog.Level, error) {
	switch s {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", s)
	}
}

// NewLogger builds the slog logger described by cfg, writing to w.
func NewLogger(cfg *Config, w io.Writer) *slog.Logger {
	level, _ := parseLevel(cfg.LogLevel)
	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

// Command d2color prints a distance-2 coloring and its seed vectors for a
// sparse matrix pattern.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/lvcolor/internal/cli"
)

// main is the entrypoint for the d2color command.
func main() {
	// Use a minimal logger until the configured one exists.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdin, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run holds the program logic so it can be tested without exiting.
func run(in io.Reader, out, errOut io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse(args, out)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := cli.NewLogger(cfg, errOut)
	slog.SetDefault(logger)
	slog.Debug("configuration resolved", "config", cfg)

	return cli.Run(context.Background(), cfg, in, out, logger)
}

// Package app runs the amiberryctl process: logging setup, command dispatch,
// and exit code mapping.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/BlitterStudio/amiberry-mcp-server/internal/cli"
	"github.com/BlitterStudio/amiberry-mcp-server/internal/emulator"
	"github.com/BlitterStudio/amiberry-mcp-server/internal/ipc"
	"github.com/BlitterStudio/amiberry-mcp-server/internal/logging"
	"github.com/BlitterStudio/amiberry-mcp-server/internal/protocol"
)

// Runner carries the process-level dependencies for one invocation.
type Runner struct {
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

// Execute runs the CLI with default process wiring and returns the exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	r := Runner{Stdout: stdout, Stderr: stderr}
	return r.Execute(ctx, args)
}

// Execute dispatches one command invocation and maps its error to an exit
// code: 0 on success, 2 for usage errors, 1 for everything else.
func (r Runner) Execute(ctx context.Context, args []string) int {
	logger := r.Logger
	if logger == nil {
		logRuntime, err := logging.New("info")
		if err != nil {
			fmt.Fprintf(r.Stderr, "error: setup logging: %v\n", err)
			return 1
		}
		defer func() { _ = logRuntime.Close() }()
		logger = logRuntime.Logger
	}

	root := cli.New(r.Stdout, r.Stderr, logger).Root()
	root.SetArgs(args)
	root.SetOut(r.Stdout)
	root.SetErr(r.Stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(r.Stderr, "error: %s\n", describe(err))
		logger.Error("command failed", "error", err.Error())
		if isUsage(err) {
			return 2
		}
		return 1
	}
	return 0
}

// describe rewords the common failure classes for terminal output; everything
// else passes through.
func describe(err error) string {
	var rejected *protocol.CommandRejected
	if errors.As(err, &rejected) {
		return fmt.Sprintf("emulator rejected %s: %s", rejected.Keyword, rejected.Message)
	}
	switch {
	case errors.Is(err, ipc.ErrUnavailable):
		return fmt.Sprintf("%v (is Amiberry running?)", err)
	case errors.Is(err, ipc.ErrTimeout):
		return fmt.Sprintf("%v (emulator busy or hung?)", err)
	case errors.Is(err, emulator.ErrDebuggerInactive):
		return fmt.Sprintf("%v (run amiberryctl debug activate first)", err)
	}
	return err.Error()
}

// isUsage detects cobra's argument and flag errors, which carry no wrapped
// sentinel to test against.
func isUsage(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown command") ||
		strings.HasPrefix(msg, "unknown flag") ||
		strings.HasPrefix(msg, "unknown shorthand flag") ||
		strings.HasPrefix(msg, "invalid argument") ||
		strings.Contains(msg, "accepts ") ||
		strings.Contains(msg, "requires at least")
}

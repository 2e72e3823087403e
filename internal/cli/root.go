// Package cli wires the amiberryctl command tree: emulator control verbs over
// the control socket plus offline tooling for .uae configs, savestates, and
// Kickstart ROMs.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/BlitterStudio/amiberry-mcp-server/internal/config"
	"github.com/BlitterStudio/amiberry-mcp-server/internal/emulator"
	"github.com/BlitterStudio/amiberry-mcp-server/internal/version"
)

// App carries the shared state behind every subcommand.
type App struct {
	stdout io.Writer
	stderr io.Writer
	logger *slog.Logger

	configFlag string
	socketFlag string
	timeout    time.Duration

	loaded config.Loaded
	client *emulator.Client
}

// New builds the CLI application around the given output streams and logger.
func New(stdout, stderr io.Writer, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &App{stdout: stdout, stderr: stderr, logger: logger}
}

// Root assembles the full command tree.
func (a *App) Root() *cobra.Command {
	root := &cobra.Command{
		Use:           "amiberryctl",
		Short:         "Control a running Amiberry emulator",
		Long:          "amiberryctl talks to a running Amiberry process over its control socket:\npause and resume, media swapping, savestates, the 68k debugger, and more.\nIt also inspects .uae configs, .uss savestates, and Kickstart ROMs offline.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.client != nil {
				a.client.Close()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.configFlag, "config", "", "config file path")
	root.PersistentFlags().StringVar(&a.socketFlag, "socket", "", "control socket path override")
	root.PersistentFlags().DurationVar(&a.timeout, "timeout", 0, "command timeout override")

	root.AddCommand(
		a.pingCmd(),
		a.statusCmd(),
		a.pauseCmd(),
		a.resumeCmd(),
		a.resetCmd(),
		a.frameCmd(),
		a.screenshotCmd(),
		a.quitCmd(),
		a.floppyCmd(),
		a.cdCmd(),
		a.swapCmd(),
		a.disksCmd(),
		a.stateCmd(),
		a.savestateCmd(),
		a.volumeCmd(),
		a.muteCmd(),
		a.displayCmd(),
		a.inputCmd(),
		a.optionCmd(),
		a.debugCmd(),
		a.monitorCmd(),
		a.romCmd(),
		a.confCmd(),
		a.doctorCmd(),
		a.versionCmd(),
	)
	return root
}

// setup loads the config and prepares the emulator client. The client does
// not connect until a command needs the socket, so offline subcommands work
// without a running emulator.
func (a *App) setup() error {
	loaded, err := config.Load(a.configFlag)
	if err != nil {
		return err
	}
	a.loaded = loaded
	for _, warning := range loaded.Warnings {
		a.logger.Warn("config warning", "message", warning.Message)
	}

	socket := a.socketFlag
	if socket == "" {
		socket = loaded.Config.Socket.Path
	}
	timeout := a.timeout
	if timeout <= 0 {
		timeout = loaded.Config.Socket.Timeout
	}

	a.client = emulator.New(emulator.Options{
		SocketPath: socket,
		Timeout:    timeout,
		Logger:     a.logger,
	})
	return nil
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.stdout, format, args...)
}

func (a *App) printFields(fields map[string]string) {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	for _, key := range keys {
		a.printf("%s=%s\n", key, fields[key])
	}
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			a.printf("%s\n", version.String())
		},
	}
}

package cli

import (
	"strconv"

	"github.com/spf13/cobra"
)

func (a *App) pingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check that the emulator answers on the control socket",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.client.Ping(cmd.Context()); err != nil {
				return err
			}
			a.printf("emulator is alive at %s\n", a.client.SocketPath())
			return nil
		},
	}
}

func (a *App) statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the emulator's run state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := a.client.Status(cmd.Context())
			if err != nil {
				return err
			}

			state := "running"
			if status.Paused {
				state = "paused"
			}
			a.printf("State: %s\n", state)
			if status.Config != "" {
				a.printf("Config: %s\n", status.Config)
			}
			for drive, image := range status.Floppies {
				if image != "" {
					a.printf("DF%d: %s\n", drive, image)
				}
			}
			if emuVersion, err := a.client.Version(cmd.Context()); err == nil {
				a.printf("Emulator: %s\n", emuVersion)
			}
			return nil
		},
	}
}

func (a *App) pauseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pause",
		Short: "Pause the emulation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.client.Pause(cmd.Context()); err != nil {
				return err
			}
			a.printf("paused\n")
			return nil
		},
	}
}

func (a *App) resumeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resume",
		Short: "Resume a paused emulation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.client.Resume(cmd.Context()); err != nil {
				return err
			}
			a.printf("running\n")
			return nil
		},
	}
}

func (a *App) resetCmd() *cobra.Command {
	var hard bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset the emulated machine",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.client.Reset(cmd.Context(), hard); err != nil {
				return err
			}
			if hard {
				a.printf("hard reset\n")
			} else {
				a.printf("soft reset\n")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&hard, "hard", false, "cold start instead of keyboard reset")
	return cmd
}

func (a *App) frameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "frame [count]",
		Short: "Step a paused emulation by whole frames",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			frames := 1
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return err
				}
				frames = n
			}
			if err := a.client.FrameAdvance(cmd.Context(), frames); err != nil {
				return err
			}
			a.printf("advanced %d frame(s)\n", frames)
			return nil
		},
	}
}

func (a *App) screenshotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "screenshot <path>",
		Short: "Write a screenshot on the emulator side",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.client.Screenshot(cmd.Context(), args[0]); err != nil {
				return err
			}
			a.printf("screenshot written to %s\n", args[0])
			return nil
		},
	}
}

func (a *App) quitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quit",
		Short: "Ask the emulator process to exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.client.Quit(cmd.Context())
		},
	}
}

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func parseSwitch(s string) (bool, error) {
	switch s {
	case "on":
		return true, nil
	case "off":
		return false, nil
	default:
		return false, fmt.Errorf("expected on or off, got %q", s)
	}
}

func (a *App) volumeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "volume [level]",
		Short: "Show or set the master volume (0-100)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				volume, err := a.client.Volume(cmd.Context())
				if err != nil {
					return err
				}
				a.printf("volume %d\n", volume)
				return nil
			}

			level, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			if err := a.client.SetVolume(cmd.Context(), level); err != nil {
				return err
			}
			a.printf("volume %d\n", level)
			return nil
		},
	}
}

func (a *App) muteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mute <on|off>",
		Short: "Mute or unmute audio output",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			muted, err := parseSwitch(args[0])
			if err != nil {
				return err
			}
			return a.client.SetMuted(cmd.Context(), muted)
		},
	}
}

func (a *App) displayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "display",
		Short: "Adjust display settings",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "fullscreen <on|off>",
		Short: "Switch between fullscreen and windowed output",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			on, err := parseSwitch(args[0])
			if err != nil {
				return err
			}
			return a.client.SetFullscreen(cmd.Context(), on)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "warp <on|off>",
		Short: "Toggle warp mode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			on, err := parseSwitch(args[0])
			if err != nil {
				return err
			}
			return a.client.SetWarp(cmd.Context(), on)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "linedouble <on|off>",
		Short: "Toggle scanline doubling",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			on, err := parseSwitch(args[0])
			if err != nil {
				return err
			}
			return a.client.SetLineDoubling(cmd.Context(), on)
		},
	})

	return cmd
}

func (a *App) inputCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "input",
		Short: "Inject keyboard, joystick, or mouse input",
	}

	var down, up bool
	keyCmd := &cobra.Command{
		Use:   "key <code>",
		Short: "Tap an Amiga keycode, or press/release it separately",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			switch {
			case down && up:
				return fmt.Errorf("--down and --up are mutually exclusive")
			case down:
				return a.client.SendKey(cmd.Context(), code, true)
			case up:
				return a.client.SendKey(cmd.Context(), code, false)
			default:
				return a.client.TapKey(cmd.Context(), code)
			}
		},
	}
	keyCmd.Flags().BoolVar(&down, "down", false, "press only")
	keyCmd.Flags().BoolVar(&up, "up", false, "release only")
	cmd.AddCommand(keyCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "joy <port> <state>",
		Short: "Set the joystick state bitmask for a port",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			port, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			state, err := strconv.Atoi(args[1])
			if err != nil {
				return err
			}
			return a.client.SendJoy(cmd.Context(), port, state)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "mouse <dx> <dy> [buttons]",
		Short: "Inject a relative mouse movement",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			dx, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			dy, err := strconv.Atoi(args[1])
			if err != nil {
				return err
			}
			buttons := 0
			if len(args) == 3 {
				buttons, err = strconv.Atoi(args[2])
				if err != nil {
					return err
				}
			}
			return a.client.SendMouse(cmd.Context(), dx, dy, buttons)
		},
	})

	return cmd
}

func (a *App) optionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "option",
		Short: "Read and write live emulator configuration options",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get <key>",
		Short: "Read one option value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := a.client.Option(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			a.printf("%s=%s\n", args[0], value)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Write one option value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.client.SetOption(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			a.printf("%s=%s\n", args[0], args[1])
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "load <path>",
		Short: "Replace the active configuration with a .uae file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.client.LoadConfig(cmd.Context(), args[0]); err != nil {
				return err
			}
			a.printf("loaded %s\n", args[0])
			return nil
		},
	})

	return cmd
}

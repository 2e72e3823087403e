package cli

import (
	"context"
	"encoding/hex"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/BlitterStudio/amiberry-mcp-server/internal/protocol"
)

// withDebugger activates the debugger session before running fn. The session
// stays active afterwards so consecutive debug commands keep their
// breakpoints; `debug deactivate` ends it.
func (a *App) withDebugger(ctx context.Context, fn func() error) error {
	if _, err := a.client.ActivateDebugger(ctx); err != nil {
		return err
	}
	return fn()
}

func (a *App) printRegisters(regs protocol.RegisterSet) {
	for row := 0; row < 2; row++ {
		prefix := "D"
		if row == 1 {
			prefix = "A"
		}
		for i := 0; i < 8; i++ {
			a.printf("%s%d=%08x ", prefix, i, regs[prefix+strconv.Itoa(i)])
		}
		a.printf("\n")
	}
	a.printf("PC=%08x SR=%08x USP=%08x SSP=%08x\n",
		regs["PC"], regs["SR"], regs["USP"], regs["SSP"])
}

func (a *App) debugCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "debug",
		Short: "Drive the 68k debugger",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "activate",
		Short: "Pause the emulation and open a debugger session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pc, err := a.client.ActivateDebugger(cmd.Context())
			if err != nil {
				return err
			}
			a.printf("debugger active, PC=%08x\n", pc)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "deactivate",
		Short: "Close the debugger session and resume",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.client.DeactivateDebugger(cmd.Context()); err != nil {
				return err
			}
			a.printf("debugger inactive\n")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "step",
		Short: "Execute one instruction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withDebugger(cmd.Context(), func() error {
				pc, err := a.client.Step(cmd.Context())
				if err != nil {
					return err
				}
				a.printf("PC=%08x\n", pc)
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "over",
		Short: "Execute one instruction, running subroutines to completion",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withDebugger(cmd.Context(), func() error {
				pc, err := a.client.StepOver(cmd.Context())
				if err != nil {
					return err
				}
				a.printf("PC=%08x\n", pc)
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "continue",
		Short: "Run until the next breakpoint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withDebugger(cmd.Context(), func() error {
				return a.client.Continue(cmd.Context())
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "regs",
		Short: "Show the 68k register set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withDebugger(cmd.Context(), func() error {
				regs, err := a.client.Registers(cmd.Context())
				if err != nil {
					return err
				}
				a.printRegisters(regs)
				return nil
			})
		},
	})

	var width int
	readCmd := &cobra.Command{
		Use:   "read <address>",
		Short: "Read a value from memory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := protocol.ParseAddress(args[0])
			if err != nil {
				return err
			}
			return a.withDebugger(cmd.Context(), func() error {
				value, err := a.client.ReadMemory(cmd.Context(), addr, width)
				if err != nil {
					return err
				}
				a.printf("0x%08x = 0x%0*x\n", value.Address, value.Width*2, value.Value)
				return nil
			})
		},
	}
	readCmd.Flags().IntVar(&width, "width", 2, "read width in bytes (1, 2, or 4)")
	cmd.AddCommand(readCmd)

	var writeWidth int
	writeCmd := &cobra.Command{
		Use:   "write <address> <value>",
		Short: "Write a value to memory",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := protocol.ParseAddress(args[0])
			if err != nil {
				return err
			}
			value, err := protocol.ParseAddress(args[1])
			if err != nil {
				return err
			}
			return a.withDebugger(cmd.Context(), func() error {
				return a.client.WriteMemory(cmd.Context(), addr, writeWidth, value)
			})
		},
	}
	writeCmd.Flags().IntVar(&writeWidth, "width", 2, "write width in bytes (1, 2, or 4)")
	cmd.AddCommand(writeCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "dump <address> <length>",
		Short: "Hex dump a block of memory",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := protocol.ParseAddress(args[0])
			if err != nil {
				return err
			}
			length, err := strconv.Atoi(args[1])
			if err != nil {
				return err
			}
			return a.withDebugger(cmd.Context(), func() error {
				blob, err := a.client.ReadMemoryBlock(cmd.Context(), addr, length)
				if err != nil {
					return err
				}
				a.printf("%s", hex.Dump(blob))
				return nil
			})
		},
	})

	breakCmd := &cobra.Command{
		Use:   "break",
		Short: "Manage breakpoints",
	}
	breakCmd.AddCommand(&cobra.Command{
		Use:   "set <address>",
		Short: "Arm an execution breakpoint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := protocol.ParseAddress(args[0])
			if err != nil {
				return err
			}
			return a.withDebugger(cmd.Context(), func() error {
				if err := a.client.SetBreakpoint(cmd.Context(), addr); err != nil {
					return err
				}
				a.printf("breakpoint at 0x%08x\n", addr)
				return nil
			})
		},
	})
	breakCmd.AddCommand(&cobra.Command{
		Use:   "clear <address>",
		Short: "Remove a breakpoint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := protocol.ParseAddress(args[0])
			if err != nil {
				return err
			}
			return a.withDebugger(cmd.Context(), func() error {
				return a.client.ClearBreakpoint(cmd.Context(), addr)
			})
		},
	})
	breakCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List armed breakpoints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withDebugger(cmd.Context(), func() error {
				breakpoints, err := a.client.Breakpoints(cmd.Context())
				if err != nil {
					return err
				}
				for _, bp := range breakpoints {
					state := "enabled"
					if !bp.Enabled {
						state = "disabled"
					}
					a.printf("0x%08x %s\n", bp.Address, state)
				}
				return nil
			})
		},
	})
	cmd.AddCommand(breakCmd)

	for _, chip := range []struct {
		use   string
		short string
		fn    func(context.Context) (map[string]string, error)
	}{
		{"copper", "Show Copper state", func(ctx context.Context) (map[string]string, error) { return a.client.CopperState(ctx) }},
		{"blitter", "Show Blitter state", func(ctx context.Context) (map[string]string, error) { return a.client.BlitterState(ctx) }},
		{"dma", "Show DMA channel state", func(ctx context.Context) (map[string]string, error) { return a.client.DMAState(ctx) }},
		{"audio", "Show Paula audio state", func(ctx context.Context) (map[string]string, error) { return a.client.AudioState(ctx) }},
	} {
		fn := chip.fn
		cmd.AddCommand(&cobra.Command{
			Use:   chip.use,
			Short: chip.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.withDebugger(cmd.Context(), func() error {
					fields, err := fn(cmd.Context())
					if err != nil {
						return err
					}
					a.printFields(fields)
					return nil
				})
			},
		})
	}

	return cmd
}

package cli

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/BlitterStudio/amiberry-mcp-server/internal/protocol"
)

var monitorVerbs = []string{
	"step", "s", "over", "o", "cont", "c", "regs", "r",
	"read", "write", "dump", "break", "clear", "breaks",
	"copper", "blitter", "dma", "audio", "status", "help", "quit", "exit",
}

func (a *App) monitorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "monitor",
		Short: "Interactive debugger session",
		Long:  "monitor opens a debugger session and drops into a prompt.\nType help for the command list; quit resumes the emulation.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdin.Fd())) {
				return errors.New("monitor needs an interactive terminal")
			}
			return a.runMonitor(cmd.Context())
		},
	}
}

func (a *App) runMonitor(ctx context.Context) error {
	pc, err := a.client.ActivateDebugger(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = a.client.DeactivateDebugger(ctx) }()
	a.printf("debugger active, PC=%08x\n", pc)

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	line.SetCompleter(func(prefix string) []string {
		var out []string
		for _, verb := range monitorVerbs {
			if strings.HasPrefix(verb, strings.ToLower(prefix)) {
				out = append(out, verb)
			}
		}
		return out
	})

	historyPath := monitorHistoryPath()
	if historyPath != "" {
		if f, err := os.Open(historyPath); err == nil {
			line.ReadHistory(f)
			f.Close()
		}
	}
	defer func() {
		if historyPath == "" {
			return
		}
		if err := os.MkdirAll(filepath.Dir(historyPath), 0o700); err != nil {
			return
		}
		if f, err := os.Create(historyPath); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}()

	for {
		input, err := line.Prompt("(monitor) ")
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			a.printf("\n")
			return nil
		}
		if err != nil {
			return err
		}

		fields := strings.Fields(input)
		if len(fields) == 0 {
			continue
		}
		line.AppendHistory(input)

		if fields[0] == "quit" || fields[0] == "exit" {
			return nil
		}
		if err := a.monitorDispatch(ctx, fields[0], fields[1:]); err != nil {
			fmt.Fprintf(a.stderr, "error: %v\n", err)
		}
	}
}

func (a *App) monitorDispatch(ctx context.Context, verb string, args []string) error {
	switch verb {
	case "step", "s":
		pc, err := a.client.Step(ctx)
		if err != nil {
			return err
		}
		a.printf("PC=%08x\n", pc)
		return nil

	case "over", "o":
		pc, err := a.client.StepOver(ctx)
		if err != nil {
			return err
		}
		a.printf("PC=%08x\n", pc)
		return nil

	case "cont", "c":
		if err := a.client.Continue(ctx); err != nil {
			return err
		}
		a.printf("running until breakpoint\n")
		return nil

	case "regs", "r":
		regs, err := a.client.Registers(ctx)
		if err != nil {
			return err
		}
		a.printRegisters(regs)
		return nil

	case "read":
		if len(args) < 1 || len(args) > 2 {
			return errors.New("usage: read <address> [width]")
		}
		addr, err := protocol.ParseAddress(args[0])
		if err != nil {
			return err
		}
		width := 2
		if len(args) == 2 {
			if width, err = strconv.Atoi(args[1]); err != nil {
				return err
			}
		}
		value, err := a.client.ReadMemory(ctx, addr, width)
		if err != nil {
			return err
		}
		a.printf("0x%08x = 0x%0*x\n", value.Address, value.Width*2, value.Value)
		return nil

	case "write":
		if len(args) < 2 || len(args) > 3 {
			return errors.New("usage: write <address> <value> [width]")
		}
		addr, err := protocol.ParseAddress(args[0])
		if err != nil {
			return err
		}
		value, err := protocol.ParseAddress(args[1])
		if err != nil {
			return err
		}
		width := 2
		if len(args) == 3 {
			if width, err = strconv.Atoi(args[2]); err != nil {
				return err
			}
		}
		return a.client.WriteMemory(ctx, addr, width, value)

	case "dump":
		if len(args) != 2 {
			return errors.New("usage: dump <address> <length>")
		}
		addr, err := protocol.ParseAddress(args[0])
		if err != nil {
			return err
		}
		length, err := strconv.Atoi(args[1])
		if err != nil {
			return err
		}
		blob, err := a.client.ReadMemoryBlock(ctx, addr, length)
		if err != nil {
			return err
		}
		a.printf("%s", hex.Dump(blob))
		return nil

	case "break":
		if len(args) != 1 {
			return errors.New("usage: break <address>")
		}
		addr, err := protocol.ParseAddress(args[0])
		if err != nil {
			return err
		}
		if err := a.client.SetBreakpoint(ctx, addr); err != nil {
			return err
		}
		a.printf("breakpoint at 0x%08x\n", addr)
		return nil

	case "clear":
		if len(args) != 1 {
			return errors.New("usage: clear <address>")
		}
		addr, err := protocol.ParseAddress(args[0])
		if err != nil {
			return err
		}
		return a.client.ClearBreakpoint(ctx, addr)

	case "breaks":
		breakpoints, err := a.client.Breakpoints(ctx)
		if err != nil {
			return err
		}
		if len(breakpoints) == 0 {
			a.printf("no breakpoints\n")
			return nil
		}
		for _, bp := range breakpoints {
			state := "enabled"
			if !bp.Enabled {
				state = "disabled"
			}
			a.printf("0x%08x %s\n", bp.Address, state)
		}
		return nil

	case "copper":
		return a.monitorChipState(ctx, a.client.CopperState)
	case "blitter":
		return a.monitorChipState(ctx, a.client.BlitterState)
	case "dma":
		return a.monitorChipState(ctx, a.client.DMAState)
	case "audio":
		return a.monitorChipState(ctx, a.client.AudioState)

	case "status":
		status, err := a.client.Status(ctx)
		if err != nil {
			return err
		}
		state := "running"
		if status.Paused {
			state = "paused"
		}
		a.printf("%s\n", state)
		return nil

	case "help":
		a.printf("step (s)             execute one instruction\n")
		a.printf("over (o)             step over subroutine calls\n")
		a.printf("cont (c)             run until breakpoint\n")
		a.printf("regs (r)             show registers\n")
		a.printf("read addr [width]    read memory\n")
		a.printf("write addr val [w]   write memory\n")
		a.printf("dump addr len        hex dump a block\n")
		a.printf("break addr           arm a breakpoint\n")
		a.printf("clear addr           remove a breakpoint\n")
		a.printf("breaks               list breakpoints\n")
		a.printf("copper|blitter|dma|audio  chipset state\n")
		a.printf("status               emulator run state\n")
		a.printf("quit                 leave the monitor and resume\n")
		return nil

	default:
		return fmt.Errorf("unknown command %q, try help", verb)
	}
}

func (a *App) monitorChipState(ctx context.Context, fn func(context.Context) (map[string]string, error)) error {
	fields, err := fn(ctx)
	if err != nil {
		return err
	}
	a.printFields(fields)
	return nil
}

func monitorHistoryPath() string {
	if xdg := strings.TrimSpace(os.Getenv("XDG_STATE_HOME")); xdg != "" {
		return filepath.Join(xdg, "amiberry-mcp", "monitor_history")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "state", "amiberry-mcp", "monitor_history")
}

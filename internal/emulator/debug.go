package emulator

import (
	"context"
	"errors"

	"github.com/BlitterStudio/amiberry-mcp-server/internal/fsm"
	"github.com/BlitterStudio/amiberry-mcp-server/internal/protocol"
)

// ErrDebuggerInactive reports a debug-only operation attempted without an
// active debugger session. The rejection is local; no wire traffic happens.
var ErrDebuggerInactive = errors.New("debugger is not active")

// DebuggerActive reports whether a debugger session is active.
func (c *Client) DebuggerActive() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.debugState == fsm.StateActive
}

// ActivateDebugger pauses the emulation and opens a debugger session,
// returning the program counter at the stop point. Activating an already
// active session returns the last known program counter without a round trip.
func (c *Client) ActivateDebugger(ctx context.Context) (uint32, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.debugState == fsm.StateActive {
		return c.pc, nil
	}

	cmd := protocol.DebugActivate()
	raw, err := c.call(ctx, cmd)
	if err != nil {
		return 0, err
	}
	pc, err := protocol.DecodeDebugState(cmd, raw)
	if err != nil {
		return 0, err
	}

	c.debugState, err = fsm.Transition(c.debugState, fsm.EventActivate)
	if err != nil {
		return 0, err
	}
	c.pc = pc
	clear(c.breakpoints)
	return pc, nil
}

// DeactivateDebugger closes the debugger session and resumes the emulation.
// The breakpoint mirror is dropped; the emulator clears its own breakpoints
// when the session ends. Deactivating without a session is a no-op.
func (c *Client) DeactivateDebugger(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.debugState != fsm.StateActive {
		return nil
	}
	if err := c.ackLocked(ctx, protocol.DebugDeactivate()); err != nil {
		return err
	}
	c.debugState, _ = fsm.Transition(c.debugState, fsm.EventDeactivate)
	c.pc = 0
	clear(c.breakpoints)
	return nil
}

func (c *Client) requireActive() error {
	if c.debugState != fsm.StateActive {
		return ErrDebuggerInactive
	}
	return nil
}

// Step executes one instruction and returns the new program counter.
func (c *Client) Step(ctx context.Context) (uint32, error) {
	return c.step(ctx, protocol.DebugStep())
}

// StepOver executes one instruction, running subroutine calls to completion,
// and returns the new program counter.
func (c *Client) StepOver(ctx context.Context) (uint32, error) {
	return c.step(ctx, protocol.DebugStepOver())
}

func (c *Client) step(ctx context.Context, cmd protocol.Command) (uint32, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.requireActive(); err != nil {
		return 0, err
	}
	raw, err := c.call(ctx, cmd)
	if err != nil {
		return 0, err
	}
	pc, err := protocol.DecodeDebugState(cmd, raw)
	if err != nil {
		return 0, err
	}
	c.pc = pc
	return pc, nil
}

// Continue resumes execution until the next breakpoint hit. The session stays
// active.
func (c *Client) Continue(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.requireActive(); err != nil {
		return err
	}
	return c.ackLocked(ctx, protocol.DebugContinue())
}

// Registers reads the full 68k register set.
func (c *Client) Registers(ctx context.Context) (protocol.RegisterSet, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.requireActive(); err != nil {
		return nil, err
	}
	cmd := protocol.DebugRegisters()
	raw, err := c.call(ctx, cmd)
	if err != nil {
		return nil, err
	}
	regs, err := protocol.DecodeRegisters(cmd, raw)
	if err != nil {
		return nil, err
	}
	c.pc = regs.PC()
	return regs, nil
}

// ReadMemory reads one value of the given width at addr. Parameter validation
// runs before the session check, so an invalid width is reported as such even
// without an active session.
func (c *Client) ReadMemory(ctx context.Context, addr uint32, width int) (protocol.MemoryValue, error) {
	cmd, err := protocol.ReadMemory(addr, width)
	if err != nil {
		return protocol.MemoryValue{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.requireActive(); err != nil {
		return protocol.MemoryValue{}, err
	}
	raw, err := c.call(ctx, cmd)
	if err != nil {
		return protocol.MemoryValue{}, err
	}
	value, err := protocol.DecodeUint32(cmd, raw)
	if err != nil {
		return protocol.MemoryValue{}, err
	}
	return protocol.MemoryValue{Address: addr, Width: width, Value: value}, nil
}

// WriteMemory writes one value of the given width at addr.
func (c *Client) WriteMemory(ctx context.Context, addr uint32, width int, value uint32) error {
	cmd, err := protocol.WriteMemory(addr, width, value)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.requireActive(); err != nil {
		return err
	}
	return c.ackLocked(ctx, cmd)
}

// ReadMemoryBlock reads length raw bytes at addr.
func (c *Client) ReadMemoryBlock(ctx context.Context, addr uint32, length int) ([]byte, error) {
	cmd, err := protocol.ReadMemoryBlock(addr, length)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.requireActive(); err != nil {
		return nil, err
	}
	raw, err := c.call(ctx, cmd)
	if err != nil {
		return nil, err
	}
	return protocol.DecodeBlob(cmd, raw)
}

// SetBreakpoint arms an execution breakpoint at addr. Setting an address that
// already has one is idempotent.
func (c *Client) SetBreakpoint(ctx context.Context, addr uint32) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.requireActive(); err != nil {
		return err
	}
	if err := c.ackLocked(ctx, protocol.SetBreakpoint(addr)); err != nil {
		return err
	}
	c.breakpoints[addr] = protocol.Breakpoint{Address: addr, Enabled: true}
	return nil
}

// ClearBreakpoint removes the breakpoint at addr. Clearing an address with no
// known breakpoint succeeds locally without a round trip.
func (c *Client) ClearBreakpoint(ctx context.Context, addr uint32) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.requireActive(); err != nil {
		return err
	}
	if _, ok := c.breakpoints[addr]; !ok {
		return nil
	}
	if err := c.ackLocked(ctx, protocol.ClearBreakpoint(addr)); err != nil {
		return err
	}
	delete(c.breakpoints, addr)
	return nil
}

// Breakpoints lists the armed breakpoints from the emulator and refreshes the
// local mirror to match.
func (c *Client) Breakpoints(ctx context.Context) ([]protocol.Breakpoint, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.requireActive(); err != nil {
		return nil, err
	}
	cmd := protocol.ListBreakpoints()
	raw, err := c.call(ctx, cmd)
	if err != nil {
		return nil, err
	}
	breakpoints, err := protocol.DecodeBreakpointList(cmd, raw)
	if err != nil {
		return nil, err
	}
	clear(c.breakpoints)
	for _, bp := range breakpoints {
		c.breakpoints[bp.Address] = bp
	}
	return breakpoints, nil
}

// CopperState reads the Copper's current execution state.
func (c *Client) CopperState(ctx context.Context) (map[string]string, error) {
	return c.chipState(ctx, protocol.CopperState())
}

// BlitterState reads the Blitter's current operation state.
func (c *Client) BlitterState(ctx context.Context) (map[string]string, error) {
	return c.chipState(ctx, protocol.BlitterState())
}

// DMAState reads the DMA controller's channel enable state.
func (c *Client) DMAState(ctx context.Context) (map[string]string, error) {
	return c.chipState(ctx, protocol.DMAState())
}

// AudioState reads the Paula audio channel state.
func (c *Client) AudioState(ctx context.Context) (map[string]string, error) {
	return c.chipState(ctx, protocol.AudioState())
}

func (c *Client) chipState(ctx context.Context, cmd protocol.Command) (map[string]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.requireActive(); err != nil {
		return nil, err
	}
	raw, err := c.call(ctx, cmd)
	if err != nil {
		return nil, err
	}
	return protocol.DecodeFields(cmd, raw)
}

package emulator

import (
	"context"
	"fmt"
	"strconv"

	"github.com/BlitterStudio/amiberry-mcp-server/internal/fsm"
	"github.com/BlitterStudio/amiberry-mcp-server/internal/protocol"
)

// Status is one snapshot of the emulator's run state.
type Status struct {
	Paused   bool
	Config   string    // active .uae config path, empty when none
	Floppies [4]string // inserted image per drive, empty when ejected
	Values   map[string]string
}

// Ping checks that the emulator answers on the control socket.
func (c *Client) Ping(ctx context.Context) error {
	cmd := protocol.Ping()
	pong, err := c.scalar(ctx, cmd)
	if err != nil {
		return err
	}
	if pong != "PONG" {
		return &protocol.ProtocolError{Keyword: cmd.Keyword, Reason: fmt.Sprintf("unexpected reply %q", pong)}
	}
	return nil
}

// Status reads the emulator's current run state.
func (c *Client) Status(ctx context.Context) (Status, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.statusLocked(ctx)
}

func (c *Client) statusLocked(ctx context.Context) (Status, error) {
	cmd := protocol.Status()
	raw, err := c.call(ctx, cmd)
	if err != nil {
		return Status{}, err
	}
	values, err := protocol.DecodeFields(cmd, raw)
	if err != nil {
		return Status{}, err
	}
	status := Status{
		Paused: values["Paused"] == "1",
		Config: values["Config"],
		Values: values,
	}
	for drive := range status.Floppies {
		status.Floppies[drive] = values["Floppy"+strconv.Itoa(drive)]
	}
	return status, nil
}

// Pause halts the emulation and confirms the transition by reading the status
// back. Pausing an already paused emulator is a no-op.
func (c *Client) Pause(ctx context.Context) (Status, error) {
	return c.setRunState(ctx, protocol.Pause(), true)
}

// Resume continues a paused emulation, confirming the transition the same way
// Pause does.
func (c *Client) Resume(ctx context.Context) (Status, error) {
	return c.setRunState(ctx, protocol.Resume(), false)
}

func (c *Client) setRunState(ctx context.Context, cmd protocol.Command, wantPaused bool) (Status, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.ackLocked(ctx, cmd); err != nil {
		return Status{}, err
	}
	status, err := c.statusLocked(ctx)
	if err != nil {
		return Status{}, err
	}
	if status.Paused != wantPaused {
		return status, fmt.Errorf("%s acknowledged but status still reports paused=%v", cmd.Keyword, status.Paused)
	}
	return status, nil
}

// Reset restarts the emulated machine. A soft reset is the keyboard reset; a
// hard reset is a cold start, which also wipes any active debugger session and
// its breakpoints.
func (c *Client) Reset(ctx context.Context, hard bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.ackLocked(ctx, protocol.Reset(hard)); err != nil {
		return err
	}
	if hard {
		c.debugState, _ = fsm.Transition(c.debugState, fsm.EventHardReset)
		clear(c.breakpoints)
	}
	return nil
}

// FrameAdvance steps the emulation by the given number of frames. The effect
// is only defined while paused; the emulator accepts the command while running
// but the result is unspecified.
func (c *Client) FrameAdvance(ctx context.Context, frames int) error {
	cmd, err := protocol.FrameAdvance(frames)
	if err != nil {
		return err
	}
	return c.ack(ctx, cmd)
}

// Quit asks the emulator process to exit.
func (c *Client) Quit(ctx context.Context) error {
	return c.ack(ctx, protocol.Quit())
}

// Version reports the emulator's version string.
func (c *Client) Version(ctx context.Context) (string, error) {
	return c.scalar(ctx, protocol.Version())
}

// Screenshot asks the emulator to write a screenshot to path on its side of
// the socket.
func (c *Client) Screenshot(ctx context.Context, path string) error {
	cmd, err := protocol.Screenshot(path)
	if err != nil {
		return err
	}
	return c.ack(ctx, cmd)
}

package emulator

import (
	"context"

	"github.com/BlitterStudio/amiberry-mcp-server/internal/protocol"
)

// SendKey injects one Amiga keycode transition, pressed or released.
func (c *Client) SendKey(ctx context.Context, code int, pressed bool) error {
	cmd, err := protocol.SendKey(code, pressed)
	if err != nil {
		return err
	}
	return c.ack(ctx, cmd)
}

// TapKey presses and releases a key as two consecutive transitions.
func (c *Client) TapKey(ctx context.Context, code int) error {
	if err := c.SendKey(ctx, code, true); err != nil {
		return err
	}
	return c.SendKey(ctx, code, false)
}

// SendJoy sets the joystick state bitmask for a port.
func (c *Client) SendJoy(ctx context.Context, port, state int) error {
	cmd, err := protocol.SendJoy(port, state)
	if err != nil {
		return err
	}
	return c.ack(ctx, cmd)
}

// SendMouse injects a relative mouse movement with a button bitmask.
func (c *Client) SendMouse(ctx context.Context, dx, dy, buttons int) error {
	cmd, err := protocol.SendMouse(dx, dy, buttons)
	if err != nil {
		return err
	}
	return c.ack(ctx, cmd)
}

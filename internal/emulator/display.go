package emulator

import (
	"context"

	"github.com/BlitterStudio/amiberry-mcp-server/internal/protocol"
)

// SetFullscreen switches between fullscreen and windowed output.
func (c *Client) SetFullscreen(ctx context.Context, on bool) error {
	return c.ack(ctx, protocol.SetFullscreen(on))
}

// SetWarp toggles warp mode, running the emulation as fast as the host allows.
func (c *Client) SetWarp(ctx context.Context, on bool) error {
	return c.ack(ctx, protocol.SetWarp(on))
}

// SetLineDoubling toggles scanline doubling for interlaced modes.
func (c *Client) SetLineDoubling(ctx context.Context, on bool) error {
	return c.ack(ctx, protocol.SetLineDoubling(on))
}

package emulator

import (
	"context"

	"github.com/BlitterStudio/amiberry-mcp-server/internal/protocol"
)

// SetVolume sets the emulator's master volume, 0 to 100.
func (c *Client) SetVolume(ctx context.Context, volume int) error {
	cmd, err := protocol.SetVolume(volume)
	if err != nil {
		return err
	}
	return c.ack(ctx, cmd)
}

// Volume reads the current master volume.
func (c *Client) Volume(ctx context.Context) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	cmd := protocol.GetVolume()
	raw, err := c.call(ctx, cmd)
	if err != nil {
		return 0, err
	}
	return protocol.DecodeInt(cmd, raw)
}

// SetMuted mutes or unmutes audio output without touching the volume level.
func (c *Client) SetMuted(ctx context.Context, muted bool) error {
	return c.ack(ctx, protocol.SetMuted(muted))
}

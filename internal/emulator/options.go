package emulator

import (
	"context"

	"github.com/BlitterStudio/amiberry-mcp-server/internal/protocol"
)

// Option reads one emulator configuration value by its .uae key. Keys and
// values pass through untyped; the emulator owns their semantics.
func (c *Client) Option(ctx context.Context, key string) (string, error) {
	cmd, err := protocol.GetOption(key)
	if err != nil {
		return "", err
	}
	return c.scalar(ctx, cmd)
}

// SetOption writes one emulator configuration value. Some options only take
// effect after a reset.
func (c *Client) SetOption(ctx context.Context, key, value string) error {
	cmd, err := protocol.SetOption(key, value)
	if err != nil {
		return err
	}
	return c.ack(ctx, cmd)
}

// LoadConfig replaces the active configuration with the .uae file at path and
// restarts the emulation with it.
func (c *Client) LoadConfig(ctx context.Context, path string) error {
	cmd, err := protocol.LoadConfig(path)
	if err != nil {
		return err
	}
	return c.ack(ctx, cmd)
}

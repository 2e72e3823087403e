package emulator

import (
	"context"

	"github.com/BlitterStudio/amiberry-mcp-server/internal/protocol"
)

// SaveState writes a savestate to statePath along with the matching .uae
// config snapshot at configPath.
func (c *Client) SaveState(ctx context.Context, statePath, configPath string) error {
	cmd, err := protocol.SaveState(statePath, configPath)
	if err != nil {
		return err
	}
	return c.ack(ctx, cmd)
}

// LoadState restores a savestate from statePath.
func (c *Client) LoadState(ctx context.Context, statePath string) error {
	cmd, err := protocol.LoadState(statePath)
	if err != nil {
		return err
	}
	return c.ack(ctx, cmd)
}

// QuickSave writes a savestate into one of the ten numbered quick slots.
func (c *Client) QuickSave(ctx context.Context, slot int) error {
	cmd, err := protocol.QuickSave(slot)
	if err != nil {
		return err
	}
	return c.ack(ctx, cmd)
}

// QuickLoad restores a savestate from a numbered quick slot.
func (c *Client) QuickLoad(ctx context.Context, slot int) error {
	cmd, err := protocol.QuickLoad(slot)
	if err != nil {
		return err
	}
	return c.ack(ctx, cmd)
}

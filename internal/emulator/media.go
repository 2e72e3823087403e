package emulator

import (
	"context"
	"strconv"

	"github.com/BlitterStudio/amiberry-mcp-server/internal/protocol"
)

// InsertFloppy mounts a disk image in a drive. Inserting into an occupied
// drive replaces the current disk; when callers race, the last write wins.
func (c *Client) InsertFloppy(ctx context.Context, drive int, path string) error {
	cmd, err := protocol.InsertFloppy(drive, path)
	if err != nil {
		return err
	}
	return c.ack(ctx, cmd)
}

// EjectFloppy removes the disk from a drive.
func (c *Client) EjectFloppy(ctx context.Context, drive int) error {
	cmd, err := protocol.EjectFloppy(drive)
	if err != nil {
		return err
	}
	return c.ack(ctx, cmd)
}

// Floppies reports all four drive slots, occupied or not.
func (c *Client) Floppies(ctx context.Context) ([]protocol.FloppyDrive, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	cmd := protocol.ListFloppies()
	raw, err := c.call(ctx, cmd)
	if err != nil {
		return nil, err
	}
	return protocol.DecodeFloppyList(cmd, raw)
}

// InsertCD mounts a CD image.
func (c *Client) InsertCD(ctx context.Context, path string) error {
	cmd, err := protocol.InsertCD(path)
	if err != nil {
		return err
	}
	return c.ack(ctx, cmd)
}

// EjectCD removes the mounted CD image.
func (c *Client) EjectCD(ctx context.Context) error {
	return c.ack(ctx, protocol.EjectCD())
}

// DiskSwap inserts an entry from the emulator's disk swapper list into a
// drive.
func (c *Client) DiskSwap(ctx context.Context, index, drive int) error {
	cmd, err := protocol.DiskSwap(index, drive)
	if err != nil {
		return err
	}
	return c.ack(ctx, cmd)
}

// QueryDiskSwap reports which swapper entry occupies a drive, -1 when the
// drive holds no swapper disk.
func (c *Client) QueryDiskSwap(ctx context.Context, drive int) (int, error) {
	cmd, err := protocol.QueryDiskSwap(drive)
	if err != nil {
		return 0, err
	}
	s, err := c.scalar(ctx, cmd)
	if err != nil {
		return 0, err
	}
	index, err := strconv.Atoi(s)
	if err != nil {
		return 0, &protocol.ProtocolError{Keyword: cmd.Keyword, Reason: "swapper index " + strconv.Quote(s) + " is not an integer"}
	}
	return index, nil
}

// Package emulator is the high-level control surface over a running Amiberry
// process: pause and resume, media, savestates, audio and display toggles,
// input injection, and the debugger session. It serializes all wire traffic
// over a single connection and mirrors the debugger session state locally so
// debug-only operations fail fast without touching the socket.
package emulator

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/BlitterStudio/amiberry-mcp-server/internal/fsm"
	"github.com/BlitterStudio/amiberry-mcp-server/internal/ipc"
	"github.com/BlitterStudio/amiberry-mcp-server/internal/protocol"
)

// defaultTimeout bounds one command round trip when Options does not set one.
const defaultTimeout = 5 * time.Second

// Options configures a Client.
type Options struct {
	// SocketPath overrides control socket resolution. Empty means resolve
	// from $XDG_RUNTIME_DIR with a /tmp fallback.
	SocketPath string

	// Timeout bounds each command round trip. Zero means defaultTimeout.
	Timeout time.Duration

	Logger *slog.Logger
}

// Client issues synchronous commands to the emulator. All methods are safe for
// concurrent use; calls are serialized over one connection.
type Client struct {
	mu        sync.Mutex
	transport *ipc.Transport
	timeout   time.Duration
	logger    *slog.Logger

	// Debugger session mirror. Guarded by mu.
	debugState  fsm.State
	pc          uint32
	breakpoints map[uint32]protocol.Breakpoint
}

// New returns a client for the resolved control socket. No connection is made
// until the first command.
func New(opts Options) *Client {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		transport:   ipc.NewTransport(ipc.SocketPath(opts.SocketPath)),
		timeout:     timeout,
		logger:      logger,
		debugState:  fsm.StateInactive,
		breakpoints: make(map[uint32]protocol.Breakpoint),
	}
}

// SocketPath returns the resolved control socket path.
func (c *Client) SocketPath() string { return c.transport.Path() }

// Available probes the emulator on a throwaway connection without disturbing
// the client's own connection or debugger state.
func (c *Client) Available(ctx context.Context) (bool, ipc.Diagnosis) {
	return ipc.Probe(ctx, c.transport.Path(), c.timeout)
}

// Close tears down the connection. The emulator keeps running.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.transport.Close()
}

// call performs one round trip. Callers hold mu.
func (c *Client) call(ctx context.Context, cmd protocol.Command) (protocol.RawResponse, error) {
	raw, err := c.transport.RoundTrip(ctx, cmd.Encode(), c.timeout, cmd.Shape.Framing())
	if err != nil {
		c.logger.Warn("command failed", "keyword", cmd.Keyword, "error", err)
		return protocol.RawResponse{}, err
	}
	return raw, nil
}

// ack sends a command expecting a bare OK, taking the client lock.
func (c *Client) ack(ctx context.Context, cmd protocol.Command) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ackLocked(ctx, cmd)
}

func (c *Client) ackLocked(ctx context.Context, cmd protocol.Command) error {
	raw, err := c.call(ctx, cmd)
	if err != nil {
		return err
	}
	return protocol.DecodeAck(cmd, raw)
}

// scalar sends a command expecting a single payload token, taking the client
// lock.
func (c *Client) scalar(ctx context.Context, cmd protocol.Command) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	raw, err := c.call(ctx, cmd)
	if err != nil {
		return "", err
	}
	return protocol.DecodeScalar(cmd, raw)
}

// fields sends a command expecting key=value payload tokens, taking the client
// lock.
func (c *Client) fields(ctx context.Context, cmd protocol.Command) (map[string]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	raw, err := c.call(ctx, cmd)
	if err != nil {
		return nil, err
	}
	return protocol.DecodeFields(cmd, raw)
}

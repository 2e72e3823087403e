package ipc

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/BlitterStudio/amiberry-mcp-server/internal/protocol"
)

// maxBlobBytes bounds length-prefixed binary payloads so a corrupt length
// field cannot ask for an unbounded allocation.
const maxBlobBytes = 16 << 20

// Transport owns one connection to the emulator control socket. It connects
// lazily on first use, performs exactly one write-then-read exchange per
// RoundTrip, and tears the connection down on any failure so the next call
// starts from a clean connect. It is not safe for concurrent use; callers
// serialize access.
type Transport struct {
	path string
	conn net.Conn
	br   *bufio.Reader
}

// NewTransport returns a transport for the given socket path without
// connecting yet.
func NewTransport(path string) *Transport {
	return &Transport{path: path}
}

// Path returns the socket path this transport connects to.
func (t *Transport) Path() string { return t.path }

// Close tears down the connection. It is idempotent.
func (t *Transport) Close() error {
	if t.conn == nil {
		return nil
	}
	err := t.conn.Close()
	t.conn = nil
	t.br = nil
	return err
}

// RoundTrip writes one encoded request and reads its framed response within
// timeout. A connection reused from an earlier call that fails at the write
// stage is redialed once; a response that times out or arrives truncated
// marks the connection dead without any retry.
func (t *Transport) RoundTrip(ctx context.Context, req []byte, timeout time.Duration, framing protocol.Framing) (protocol.RawResponse, error) {
	reused := t.conn != nil
	if err := t.connect(ctx, timeout); err != nil {
		return protocol.RawResponse{}, err
	}

	deadline := time.Now().Add(timeout)
	if err := t.writeRequest(req, deadline); err != nil {
		t.Close()
		if !reused || isTimeout(err) {
			return protocol.RawResponse{}, err
		}
		// The idle connection went stale since the last call; redial once
		// and resend. The request was never answered, so this cannot
		// duplicate a command.
		if err := t.connect(ctx, timeout); err != nil {
			return protocol.RawResponse{}, err
		}
		if err := t.writeRequest(req, deadline); err != nil {
			t.Close()
			return protocol.RawResponse{}, err
		}
	}

	resp, err := t.readResponse(framing)
	if err != nil {
		t.Close()
		return protocol.RawResponse{}, err
	}
	return resp, nil
}

// connect dials the socket when no connection is held, retrying the connect
// step once on transient failure.
func (t *Transport) connect(ctx context.Context, timeout time.Duration) error {
	if t.conn != nil {
		return nil
	}

	conn, err := t.dial(ctx, timeout)
	if err != nil && !isTimeout(err) {
		conn, err = t.dial(ctx, timeout)
	}
	if err != nil {
		switch {
		case isTimeout(err):
			return fmt.Errorf("%w: connect %s", ErrTimeout, t.path)
		case isUnavailable(err):
			return fmt.Errorf("%w: %s", ErrUnavailable, t.path)
		default:
			return fmt.Errorf("connect %s: %w", t.path, err)
		}
	}

	t.conn = conn
	t.br = bufio.NewReader(conn)
	return nil
}

func (t *Transport) dial(ctx context.Context, timeout time.Duration) (net.Conn, error) {
	dialer := net.Dialer{Timeout: timeout}
	return dialer.DialContext(ctx, "unix", t.path)
}

func (t *Transport) writeRequest(req []byte, deadline time.Time) error {
	if err := t.conn.SetDeadline(deadline); err != nil {
		return fmt.Errorf("set deadline: %w", err)
	}
	if _, err := t.conn.Write(req); err != nil {
		if isTimeout(err) {
			return fmt.Errorf("%w: write request", ErrTimeout)
		}
		return fmt.Errorf("%w: write request: %v", ErrUnavailable, err)
	}
	return nil
}

// readResponse reads the status line and, for OK responses, whatever extra
// payload the framing declares: a counted block of lines or a
// length-prefixed byte blob. The connection deadline armed at the write
// stage covers all reads.
func (t *Transport) readResponse(framing protocol.Framing) (protocol.RawResponse, error) {
	line, err := t.readLine()
	if err != nil {
		return protocol.RawResponse{}, err
	}
	resp := protocol.RawResponse{Line: line}

	fields := strings.Split(line, protocol.Separator)
	if fields[0] != protocol.StatusOK {
		// ERROR responses never carry extra payload.
		return resp, nil
	}

	switch framing {
	case protocol.FrameLines:
		count, err := framingSize(fields)
		if err != nil {
			return protocol.RawResponse{}, err
		}
		for i := 0; i < count; i++ {
			extra, err := t.readLine()
			if err != nil {
				return protocol.RawResponse{}, err
			}
			resp.Lines = append(resp.Lines, extra)
		}
	case protocol.FrameBlob:
		size, err := framingSize(fields)
		if err != nil {
			return protocol.RawResponse{}, err
		}
		if size > maxBlobBytes {
			return protocol.RawResponse{}, &protocol.ProtocolError{
				Reason: fmt.Sprintf("binary payload of %d bytes exceeds limit", size),
			}
		}
		blob := make([]byte, size)
		if _, err := io.ReadFull(t.br, blob); err != nil {
			if isTimeout(err) {
				return protocol.RawResponse{}, fmt.Errorf("%w: read binary payload", ErrTimeout)
			}
			return protocol.RawResponse{}, &protocol.ProtocolError{Reason: "binary payload truncated"}
		}
		resp.Blob = blob
	}

	return resp, nil
}

func (t *Transport) readLine() (string, error) {
	line, err := t.br.ReadString('\n')
	if err != nil {
		if isTimeout(err) {
			return "", fmt.Errorf("%w: read response", ErrTimeout)
		}
		return "", &protocol.ProtocolError{Reason: "response truncated before terminator"}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// framingSize extracts the count/length token a framed OK status line must
// carry as its first payload field.
func framingSize(fields []string) (int, error) {
	if len(fields) < 2 {
		return 0, &protocol.ProtocolError{Reason: "framed response is missing its size field"}
	}
	size, err := strconv.Atoi(fields[1])
	if err != nil || size < 0 {
		return 0, &protocol.ProtocolError{Reason: fmt.Sprintf("bad framing size %q", fields[1])}
	}
	return size, nil
}
